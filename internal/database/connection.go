package database

import (
	"errors"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"linkr/internal/models"
)

func (d *Database) Connect() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Post{},
		&models.Hashtag{},
		&models.PostHashtag{},
		&models.Like{},
		&models.Follow{},
	)
	if err != nil {
		return err
	}

	d.db = db

	return nil
}
