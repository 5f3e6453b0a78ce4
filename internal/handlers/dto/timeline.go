package dto

import (
	"time"
)

type PublishRequest struct {
	Link        string `json:"link" binding:"required,url"`
	Description string `json:"description"`
}

type LikeRequest struct {
	PostID uint `json:"post_id" binding:"required"`
}

// PostResponse — пост ленты вместе с автором, хэштегами и best-effort превью
type PostResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username"`
	PictureURL  string    `json:"picture_url"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Hashtags    []string  `json:"hashtags"`

	// Поля превью остаются пустыми, если метаданные недоступны
	LinkTitle       string `json:"link_title,omitempty"`
	LinkImage       string `json:"link_image,omitempty"`
	LinkDescription string `json:"link_description,omitempty"`
}
