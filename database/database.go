package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"postboard/models"
)

var DB *gorm.DB

// Connect opens the database named by the DSN and runs migrations.
// A postgres:// URL selects the postgres driver; anything else is treated
// as a SQLite file path, which is the local development default.
func Connect(dsn string) error {
	dialector := dialectorFor(dsn)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		return err
	}

	DB = db
	log.Println("Connected to database")
	return nil
}

func dialectorFor(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// Disconnect closes the underlying connection pool.
func Disconnect() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.Close(); err != nil {
		return err
	}

	log.Println("Disconnected from database")
	return nil
}
