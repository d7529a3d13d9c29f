package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	domain "github.com/BruksfildServices01/barbercraft/internal/domain/order"
	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/httpresp"
	"github.com/BruksfildServices01/barbercraft/internal/middleware"
	orderuc "github.com/BruksfildServices01/barbercraft/internal/usecase/order"
)

type OrderHandler struct {
	checkout *orderuc.CheckoutOrder
	list     *orderuc.ListOrders
	log      *zap.Logger
}

// NewOrderHandler takes a nil gateway when online payment is not configured.
func NewOrderHandler(
	repo domain.Repository,
	gateway orderuc.PaymentGateway,
	dispatcher *audit.Dispatcher,
	log *zap.Logger,
) *OrderHandler {
	return &OrderHandler{
		checkout: orderuc.NewCheckoutOrder(repo, gateway, dispatcher, log),
		list:     orderuc.NewListOrders(repo),
		log:      log,
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.list.Execute(c.Request.Context(), middleware.Scope(c))
	if err != nil {
		httperr.Respond(c, h.log, err, "Failed to fetch orders")
		return
	}

	httpresp.List(c, orders)
}

// Checkout prices the cart from the catalog; client-sent prices are never
// read. Items may name the product as product_id or id.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	lines := make([]domain.Line, 0, len(req.Items))
	for _, item := range req.Items {
		id := item.ProductID
		if id == 0 {
			id = item.ID
		}
		line := domain.Line{ProductID: uint(id)}
		if item.Quantity != nil {
			line.Quantity = *item.Quantity
		}
		lines = append(lines, line)
	}

	res, err := h.checkout.Execute(c.Request.Context(), orderuc.CheckoutInput{
		UserID:          middleware.UserID(c),
		Lines:           lines,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		httperr.Respond(c, h.log, err, "Failed to create order")
		return
	}

	httpresp.Created(c, dto.CheckoutResponse{
		Order:      res.Order,
		Message:    res.Message,
		PaymentURL: res.Order.PaymentURL,
	})
}
