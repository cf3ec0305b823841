package models

// User is an account holder. The email is the login identifier and doubles
// as the JWT subject; the bcrypt hash is never serialized in responses.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`
}
