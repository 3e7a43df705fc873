package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/luxstyle-booking/internal/domain/account"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AccountGormRepository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

var _ account.Repository = (*AccountGormRepository)(nil)
