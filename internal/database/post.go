package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"linkr/internal/models"
)

// CreatePostWithHashtags пишет пост и связки с хэштегами в одной транзакции.
// Уникальные индексы на hashtags.name и (post_id, hashtag_id) закрывают гонку
// между конкурентными публикациями одинаковых тегов.
func (d *Database) CreatePostWithHashtags(ctx context.Context, post *models.Post, tags []string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}

		for _, name := range tags {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.Hashtag{Name: name}).Error; err != nil {
				return err
			}

			// Перечитываем id: строка могла быть вставлена конкурентом
			var hashtag models.Hashtag
			if err := tx.Where("name = ?", name).First(&hashtag).Error; err != nil {
				return err
			}

			link := models.PostHashtag{PostID: post.ID, HashtagID: hashtag.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (d *Database) GetRecentPosts(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := d.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Preload("User").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (d *Database) GetPostHashtags(ctx context.Context, postID uint) ([]models.Hashtag, error) {
	var hashtags []models.Hashtag
	err := d.db.WithContext(ctx).
		Joins("JOIN post_hashtags ON post_hashtags.hashtag_id = hashtags.id").
		Where("post_hashtags.post_id = ?", postID).
		Find(&hashtags).Error
	if err != nil {
		return nil, err
	}
	return hashtags, nil
}

func (d *Database) GetAvatar(ctx context.Context, userID uint) (string, error) {
	var user models.User
	if err := d.db.WithContext(ctx).Select("picture_url").First(&user, "id = ?", userID).Error; err != nil {
		return "", err
	}
	return user.PictureURL, nil
}
