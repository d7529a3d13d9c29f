package order

import (
	"context"

	"github.com/BruksfildServices01/barbercraft/internal/domain/access"
	"github.com/BruksfildServices01/barbercraft/internal/models"
)

type Repository interface {
	// InTx runs fn in one transaction. fn must only use the repository it is given.
	InTx(ctx context.Context, fn func(tx Repository) error) error

	// FindProducts returns the products among ids that exist, keyed by id.
	FindProducts(ctx context.Context, ids []uint) (map[uint]models.Product, error)

	CreateOrder(ctx context.Context, o *models.Order) error
	SetPayment(ctx context.Context, id uint, status Status, reference, url string) error
	ListOrders(ctx context.Context, scope access.Scope) ([]models.Order, error)
}
