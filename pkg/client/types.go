package client

import "time"

// Wire types mirror the API's JSON bodies.

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Me struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Role     string  `json:"role"`
	Name     string  `json:"name"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
}

type Service struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

type DayHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Barber struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Title           string               `json:"title"`
	Bio             string               `json:"bio"`
	Avatar          string               `json:"avatar"`
	Specialties     []string             `json:"specialties"`
	Rating          float64              `json:"rating"`
	YearsExperience int                  `json:"yearsExperience"`
	Featured        bool                 `json:"featured"`
	WorkingHours    map[string]*DayHours `json:"workingHours"`
}

type Product struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	Image       string    `json:"image"`
	InStock     bool      `json:"in_stock"`
	StockCount  int       `json:"stock_count"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

type Appointment struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	ServiceID   uint       `json:"service_id"`
	StaffID     *uint      `json:"staff_id"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
	TotalPrice  float64    `json:"total_price"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`

	ServiceName     *string  `json:"service_name"`
	ServicePrice    *float64 `json:"service_price"`
	ServiceDuration *int     `json:"service_duration"`
	StaffName       *string  `json:"staff_name"`
	Username        *string  `json:"username"`
	UserName        *string  `json:"user_name"`
}

// NewAppointment books a slot. StaffID may be a number or "barber_N".
type NewAppointment struct {
	ServiceID uint   `json:"service_id"`
	StaffID   string `json:"staff_id,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes,omitempty"`
}

type OrderItem struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID              uint           `json:"id"`
	UserID          uint           `json:"user_id"`
	Items           []OrderItem    `json:"items"`
	Status          string         `json:"status"`
	TotalAmount     float64        `json:"total_amount"`
	PaymentMethod   string         `json:"payment_method"`
	PaymentURL      string         `json:"payment_url,omitempty"`
	ShippingAddress map[string]any `json:"shipping_address"`
	CreatedAt       time.Time      `json:"created_at"`
}

type CartItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CheckoutRequest struct {
	Items           []CartItem     `json:"items"`
	ShippingAddress map[string]any `json:"shipping_address,omitempty"`
	PaymentMethod   string         `json:"payment_method,omitempty"`
}

type CheckoutResponse struct {
	Order      Order  `json:"order"`
	Message    string `json:"message"`
	PaymentURL string `json:"payment_url,omitempty"`
}

type Review struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	ServiceID    *uint     `json:"service_id"`
	StaffID      *uint     `json:"staff_id"`
	ServiceName  *string   `json:"service_name"`
	StaffName    *string   `json:"staff_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type SearchResult struct {
	Services []Service `json:"services"`
	Barbers  []Barber  `json:"barbers"`
	Products []Product `json:"products"`
}
