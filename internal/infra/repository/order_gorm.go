package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbercraft/internal/domain/access"
	domain "github.com/BruksfildServices01/barbercraft/internal/domain/order"
	"github.com/BruksfildServices01/barbercraft/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) InTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&OrderGormRepository{db: tx})
	})
}

func (r *OrderGormRepository) FindProducts(ctx context.Context, ids []uint) (map[uint]models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).
		Select("id", "name", "price").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	found := make(map[uint]models.Product, len(rows))
	for _, p := range rows {
		found[p.ID] = p
	}
	return found, nil
}

func (r *OrderGormRepository) CreateOrder(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderGormRepository) SetPayment(
	ctx context.Context,
	id uint,
	status domain.Status,
	reference, url string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":            string(status),
			"payment_reference": reference,
			"payment_url":       url,
		}).Error
}

func (r *OrderGormRepository) ListOrders(ctx context.Context, scope access.Scope) ([]models.Order, error) {
	q := r.db.WithContext(ctx)
	if owner := scope.OwnerFilter(); owner != nil {
		q = q.Where("user_id = ?", *owner)
	}

	orders := []models.Order{}
	if err := q.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

var _ domain.Repository = (*OrderGormRepository)(nil)
