package database

import (
	"context"

	"gorm.io/gorm/clause"

	"linkr/internal/models"
)

// AddLike идемпотентен: повторный лайк той же пары (post, user) не создает строку
func (d *Database) AddLike(ctx context.Context, postID, userID uint) error {
	like := models.Like{PostID: postID, UserID: userID}
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
}

// RemoveLike безусловен: удаление несуществующего лайка не ошибка
func (d *Database) RemoveLike(ctx context.Context, postID, userID uint) error {
	return d.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{}).Error
}

func (d *Database) GetLikes(ctx context.Context) ([]models.Like, error) {
	var likes []models.Like
	if err := d.db.WithContext(ctx).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}
