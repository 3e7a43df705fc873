package account

import (
	"context"

	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

type Repository interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}
