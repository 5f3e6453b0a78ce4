package database

import (
	"context"

	"linkr/internal/models"
)

func (d *Database) SaveUser(ctx context.Context, user *models.User) error {
	if err := d.db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}
	return nil
}

func (d *Database) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user := models.User{}
	if err := d.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := models.User{}
	if err := d.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := models.User{}
	if err := d.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchUsersByUsername ищет пользователей по подстроке, без учета регистра
func (d *Database) SearchUsersByUsername(ctx context.Context, piece string) ([]models.User, error) {
	var users []models.User
	err := d.db.WithContext(ctx).
		Where("username ILIKE ?", "%"+piece+"%").
		Order("username ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
