package order

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/models"
)

type Status string

const (
	StatusPendingCash    Status = "pending_cash"
	StatusConfirmedCash  Status = "confirmed_cash"
	StatusPendingPayment Status = "pending_payment"
	StatusProcessing     Status = "processing"
	StatusShipped        Status = "shipped"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentMercadoPago PaymentMethod = "mercadopago"
)

const (
	CashMessage   = "Order created successfully. Payment method: Cash on delivery."
	OnlineMessage = "Order created successfully. Complete the payment to confirm it."
)

var (
	ErrNoItems             = httperr.Validation("Items are required")
	ErrInvalidQuantity     = httperr.Validation("Quantity must be a positive number")
	ErrInvalidMethod       = httperr.Validation("Invalid payment method")
	ErrPaymentUnavailable  = httperr.Validation("Payment method not available")
	ErrPaymentGatewayFault = httperr.ErrBusiness(http.StatusBadGateway, "Payment gateway unavailable")
)

func InvalidProduct(id uint) error {
	return httperr.Validation(fmt.Sprintf("Invalid product: %d", id))
}

// ParsePaymentMethod maps an empty value to cash.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case "":
		return PaymentCash, nil
	case PaymentCash, PaymentMercadoPago:
		return m, nil
	}
	return "", ErrInvalidMethod
}

func (m PaymentMethod) InitialStatus() Status {
	if m == PaymentMercadoPago {
		return StatusPendingPayment
	}
	return StatusPendingCash
}

// Line is a requested item before its price is resolved.
type Line struct {
	ProductID uint
	Quantity  int
}

// Total sums price × quantity in decimal and rounds to cents.
func Total(items []models.OrderItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	f, _ := sum.Round(2).Float64()
	return f
}
