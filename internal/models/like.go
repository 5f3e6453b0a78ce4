package models

type Like struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PostID uint `gorm:"uniqueIndex:idx_like_edge;not null" json:"post_id"`
	UserID uint `gorm:"uniqueIndex:idx_like_edge;not null" json:"user_id"`
}
