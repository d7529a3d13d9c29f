package dto

import "github.com/BruksfildServices01/barbercraft/internal/models"

type CheckoutItem struct {
	ProductID FlexID `json:"product_id"`
	ID        FlexID `json:"id"`
	Quantity  *int   `json:"quantity"`
}

type CheckoutRequest struct {
	Items           []CheckoutItem `json:"items"`
	ShippingAddress map[string]any `json:"shipping_address"`
	PaymentMethod   string         `json:"payment_method"`
}

type CheckoutResponse struct {
	Order      models.Order `json:"order"`
	Message    string       `json:"message"`
	PaymentURL string       `json:"payment_url,omitempty"`
}
