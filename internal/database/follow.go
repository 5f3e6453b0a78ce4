package database

import (
	"context"

	"gorm.io/gorm/clause"

	"linkr/internal/models"
)

// ToggleFollow переключает ребро подписки одним условным шагом:
// delete-if-present, иначе insert. Возвращает итоговое состояние.
func (d *Database) ToggleFollow(ctx context.Context, followerID, followedID uint) (bool, error) {
	res := d.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	edge := models.Follow{FollowerID: followerID, FollowedID: followedID}
	err := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
	if err != nil {
		return false, err
	}
	return true, nil
}
