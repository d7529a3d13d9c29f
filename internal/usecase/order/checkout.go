package order

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/domain/access"
	domain "github.com/BruksfildServices01/barbercraft/internal/domain/order"
	"github.com/BruksfildServices01/barbercraft/internal/models"
)

// ======================================================
// PORTS
// ======================================================

// PaymentGateway opens a hosted checkout for an order already persisted.
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, o *models.Order, titles map[uint]string) (Checkout, error)
}

type Checkout struct {
	Reference string
	URL       string
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

// CheckoutInput lines carry Quantity 0 when the client sent none.
type CheckoutInput struct {
	UserID          uint
	Lines           []domain.Line
	ShippingAddress map[string]any
	PaymentMethod   string
}

type CheckoutResult struct {
	Order   models.Order
	Message string
}

// ======================================================
// USE CASE
// ======================================================

type CheckoutOrder struct {
	repo    domain.Repository
	gateway PaymentGateway
	audit   *audit.Dispatcher
	log     *zap.Logger
}

// NewCheckoutOrder accepts a nil gateway; online payment is then refused.
func NewCheckoutOrder(
	repo domain.Repository,
	gateway PaymentGateway,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CheckoutOrder {
	return &CheckoutOrder{repo: repo, gateway: gateway, audit: audit, log: log}
}

func (uc *CheckoutOrder) Execute(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {

	// --------------------------------------------------
	// 1. Request shape
	// --------------------------------------------------
	if len(in.Lines) == 0 {
		return nil, domain.ErrNoItems
	}

	method, err := domain.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	if method == domain.PaymentMercadoPago && uc.gateway == nil {
		return nil, domain.ErrPaymentUnavailable
	}

	ids := make([]uint, 0, len(in.Lines))
	for i := range in.Lines {
		if in.Lines[i].Quantity < 0 {
			return nil, domain.ErrInvalidQuantity
		}
		if in.Lines[i].Quantity == 0 {
			in.Lines[i].Quantity = 1
		}
		ids = append(ids, in.Lines[i].ProductID)
	}

	// --------------------------------------------------
	// 2. Resolve prices and persist atomically
	// --------------------------------------------------
	o := &models.Order{
		UserID:          in.UserID,
		Status:          string(method.InitialStatus()),
		PaymentMethod:   string(method),
		ShippingAddress: in.ShippingAddress,
	}
	titles := make(map[uint]string, len(ids))

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		products, err := tx.FindProducts(ctx, ids)
		if err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(in.Lines))
		for _, line := range in.Lines {
			p, ok := products[line.ProductID]
			if !ok {
				return domain.InvalidProduct(line.ProductID)
			}
			titles[p.ID] = p.Name
			items = append(items, models.OrderItem{
				ProductID: p.ID,
				Quantity:  line.Quantity,
				Price:     p.Price,
			})
		}

		o.Items = items
		o.TotalAmount = domain.Total(items)
		return tx.CreateOrder(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionOrderCheckedOut,
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]any{"total": o.TotalAmount, "payment_method": o.PaymentMethod},
	})

	if method == domain.PaymentCash {
		return &CheckoutResult{Order: *o, Message: domain.CashMessage}, nil
	}

	// --------------------------------------------------
	// 3. Hosted checkout (outside the transaction)
	// --------------------------------------------------
	checkout, err := uc.gateway.CreateCheckout(ctx, o, titles)
	if err != nil {
		uc.log.Error("payment checkout failed", zap.Uint("order_id", o.ID), zap.Error(err))
		return nil, domain.ErrPaymentGatewayFault
	}

	if err := uc.repo.SetPayment(ctx, o.ID, domain.StatusPendingPayment, checkout.Reference, checkout.URL); err != nil {
		return nil, err
	}
	o.PaymentReference = checkout.Reference
	o.PaymentURL = checkout.URL

	return &CheckoutResult{Order: *o, Message: domain.OnlineMessage}, nil
}

type ListOrders struct {
	repo domain.Repository
}

func NewListOrders(repo domain.Repository) *ListOrders {
	return &ListOrders{repo: repo}
}

func (uc *ListOrders) Execute(ctx context.Context, scope access.Scope) ([]models.Order, error) {
	return uc.repo.ListOrders(ctx, scope)
}
