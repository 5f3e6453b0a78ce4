package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Username     string    `gorm:"not null" json:"username"`
	PictureURL   string    `json:"picture_url"`
	CreatedAt    time.Time `json:"created_at"`
}
