package models

// Post is a short text entry owned by a single user.
type Post struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"not null" json:"text"`
	UserID uint   `gorm:"index;not null" json:"user_id"`
	User   *User  `gorm:"foreignKey:UserID" json:"-"`
}
