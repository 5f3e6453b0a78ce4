package models

import (
	"time"
)

type Post struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	URL         string `gorm:"not null" json:"url"`
	Description string `json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// Связи
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Hashtag хранит имя вместе с ведущим '#', без нормализации регистра
type Hashtag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type PostHashtag struct {
	ID        uint `gorm:"primaryKey"`
	PostID    uint `gorm:"uniqueIndex:idx_post_hashtag;not null"`
	HashtagID uint `gorm:"uniqueIndex:idx_post_hashtag;not null"`
}
