package user

import (
	"context"

	"github.com/BruksfildServices01/barbercraft/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	ListCustomers(ctx context.Context) ([]models.User, error)
}
