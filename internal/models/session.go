package models

import (
	"time"
)

// Session — не более одной строки на пользователя, токен ротируется на месте
type Session struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	Token     string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}
