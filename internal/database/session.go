package database

import (
	"context"

	"gorm.io/gorm/clause"

	"linkr/internal/models"
)

// ReplaceSession вставляет сессию либо ротирует токен существующей —
// у пользователя всегда не более одной активной сессии
func (d *Database) ReplaceSession(ctx context.Context, userID uint, token string) error {
	session := models.Session{UserID: userID, Token: token}
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"token": token}),
		}).
		Create(&session).Error
}

func (d *Database) GetSessionByToken(ctx context.Context, token string) (*models.Session, error) {
	session := models.Session{}
	if err := d.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSessionByToken возвращает число удаленных строк: 0 означает неизвестный токен
func (d *Database) DeleteSessionByToken(ctx context.Context, token string) (int64, error) {
	res := d.db.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
