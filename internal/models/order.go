package models

import "time"

type OrderItem struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	Items       []OrderItem `gorm:"type:text;not null;serializer:json" json:"items"`
	Status      string      `gorm:"size:20;not null;default:'pending_cash'" json:"status"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`

	PaymentMethod    string `gorm:"size:20;not null;default:'cash'" json:"payment_method"`
	PaymentReference string `gorm:"size:100" json:"payment_reference,omitempty"`
	PaymentURL       string `gorm:"size:500" json:"payment_url,omitempty"`

	ShippingAddress map[string]any `gorm:"type:text;serializer:json" json:"shipping_address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
