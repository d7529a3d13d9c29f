package client

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	statusPending       = "pending"
	statusCancelled     = "cancelled"
	statusPendingCash   = "pending_cash"
	methodCash          = "cash"
	mockTokenPrefix     = "mock-token-"
	mockCashOrderNotice = "Order created successfully. Payment method: Cash on delivery."
)

type mockUser struct {
	User
	password string
	email    string
	name     string
}

// MockClient serves API from in-memory demo data. It is deterministic and
// safe for concurrent use.
type MockClient struct {
	mu     sync.Mutex
	tokens TokenStore
	now    func() time.Time

	users        []mockUser
	services     []Service
	barbers      []Barber
	products     []Product
	reviews      []Review
	appointments []Appointment
	orders       []Order
}

func NewMockClient(tokens TokenStore) *MockClient {
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}
	return &MockClient{
		tokens: tokens,
		now:    time.Now,
		users: []mockUser{
			{User: User{ID: 1, Username: "admin", Role: "ADMIN"}, password: "admin123", email: "admin@barbercraft.com", name: "Admin"},
			{User: User{ID: 2, Username: "demo", Role: "USER"}, password: "user123", email: "demo@barbercraft.com", name: "Demo User"},
		},
		services: fixtureServices(),
		barbers:  fixtureBarbers(),
		products: fixtureProducts(),
		reviews:  fixtureReviews(),
	}
}

func mockErr(status int, msg string) error {
	return &APIError{Status: status, Message: msg}
}

// current resolves the signed-in user from the token store.
func (m *MockClient) current() (*mockUser, error) {
	token, err := m.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	if token == "" {
		return nil, mockErr(http.StatusUnauthorized, "Access token required")
	}
	id, err := strconv.ParseUint(strings.TrimPrefix(token, mockTokenPrefix), 10, 64)
	if err != nil || !strings.HasPrefix(token, mockTokenPrefix) {
		return nil, mockErr(http.StatusUnauthorized, "Invalid or expired token")
	}
	for i := range m.users {
		if m.users[i].ID == uint(id) {
			return &m.users[i], nil
		}
	}
	return nil, mockErr(http.StatusUnauthorized, "Invalid or expired token")
}

func (m *MockClient) signIn(u mockUser) (*AuthResponse, error) {
	token := mockTokenPrefix + strconv.FormatUint(uint64(u.ID), 10)
	if err := m.tokens.SetToken(token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	return &AuthResponse{Token: token, User: u.User}, nil
}

// --------- Auth ---------

func (m *MockClient) Register(_ context.Context, req RegisterRequest) (*AuthResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, mockErr(http.StatusBadRequest, "Username and password required")
	}
	if len(req.Password) < 6 {
		return nil, mockErr(http.StatusBadRequest, "Password must be at least 6 characters")
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			return nil, mockErr(http.StatusBadRequest, "Username already exists")
		}
		if req.Email != "" && strings.EqualFold(u.email, req.Email) {
			return nil, mockErr(http.StatusBadRequest, "Email already exists")
		}
	}

	u := mockUser{
		User:     User{ID: uint(len(m.users) + 1), Username: username, Role: "USER"},
		password: req.Password,
		email:    req.Email,
		name:     req.Name,
	}
	m.users = append(m.users, u)
	return m.signIn(u)
}

func (m *MockClient) Login(_ context.Context, username, password string) (*AuthResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if username == "" || password == "" {
		return nil, mockErr(http.StatusBadRequest, "Username and password required")
	}
	for _, u := range m.users {
		if u.Username == username && u.password == password {
			return m.signIn(u)
		}
	}
	return nil, mockErr(http.StatusUnauthorized, "Invalid credentials")
}

func (m *MockClient) Logout(context.Context) error {
	return m.tokens.Clear()
}

func (m *MockClient) Me(context.Context) (*Me, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.current()
	if err != nil {
		return nil, err
	}
	me := &Me{ID: u.ID, Username: u.Username, Role: u.Role, Name: u.name}
	if u.email != "" {
		email := u.email
		me.Email = &email
	}
	return me, nil
}

// --------- Catalog ---------

func (m *MockClient) Services(context.Context) ([]Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Service{}, m.services...), nil
}

func (m *MockClient) Service(_ context.Context, id uint) (*Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.service(id)
	if s == nil {
		return nil, mockErr(http.StatusNotFound, "Service not found")
	}
	out := *s
	return &out, nil
}

func (m *MockClient) service(id uint) *Service {
	for i := range m.services {
		if m.services[i].ID == id {
			return &m.services[i]
		}
	}
	return nil
}

func (m *MockClient) Barbers(context.Context) ([]Barber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Barber{}, m.barbers...), nil
}

func (m *MockClient) Products(context.Context) ([]Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Product{}, m.products...), nil
}

func (m *MockClient) Product(_ context.Context, id uint) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.product(id)
	if p == nil {
		return nil, mockErr(http.StatusNotFound, "Product not found")
	}
	out := *p
	return &out, nil
}

func (m *MockClient) product(id uint) *Product {
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i]
		}
	}
	return nil
}

func (m *MockClient) Reviews(context.Context) ([]Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Review{}, m.reviews...), nil
}

func (m *MockClient) Search(_ context.Context, q string) (*SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil, mockErr(http.StatusBadRequest, "Search query required")
	}
	has := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}

	res := &SearchResult{Services: []Service{}, Barbers: []Barber{}, Products: []Product{}}
	for _, s := range m.services {
		if has(s.Name, s.Description) {
			res.Services = append(res.Services, s)
		}
	}
	for _, b := range m.barbers {
		if has(b.Name, b.Bio) {
			res.Barbers = append(res.Barbers, b)
		}
	}
	for _, p := range m.products {
		if has(p.Name, p.Description) {
			res.Products = append(res.Products, p)
		}
	}
	return res, nil
}

// --------- Appointments ---------

func (m *MockClient) Appointments(context.Context) ([]Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.current()
	if err != nil {
		return nil, err
	}
	out := []Appointment{}
	for _, ap := range m.appointments {
		if u.Role == "ADMIN" || ap.UserID == u.ID {
			out = append(out, ap)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	return out, nil
}

func (m *MockClient) CreateAppointment(_ context.Context, req NewAppointment) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.current()
	if err != nil {
		return nil, err
	}
	if req.ServiceID == 0 || req.Date == "" || req.Time == "" {
		return nil, mockErr(http.StatusBadRequest, "Service, date, and time are required")
	}
	if _, err := time.Parse("2006-01-02 15:04", req.Date+" "+req.Time); err != nil {
		return nil, mockErr(http.StatusBadRequest, "Invalid date or time")
	}
	svc := m.service(req.ServiceID)
	if svc == nil {
		return nil, mockErr(http.StatusBadRequest, "Invalid service")
	}

	staffID, err := m.staff(req.StaffID)
	if err != nil {
		return nil, err
	}
	if m.taken(req.Date, req.Time, staffID) {
		return nil, mockErr(http.StatusBadRequest, "This time slot is already booked")
	}

	name, price, duration := svc.Name, svc.Price, svc.Duration
	username := u.Username
	ap := Appointment{
		ID:              uint(len(m.appointments) + 1),
		UserID:          u.ID,
		ServiceID:       svc.ID,
		StaffID:         staffID,
		Date:            req.Date,
		Time:            req.Time,
		Status:          statusPending,
		Notes:           req.Notes,
		TotalPrice:      svc.Price,
		CreatedAt:       m.now().UTC(),
		ServiceName:     &name,
		ServicePrice:    &price,
		ServiceDuration: &duration,
		Username:        &username,
	}
	if staffID != nil {
		staffName := m.barbers[*staffID-1].Name
		ap.StaffName = &staffName
	}
	m.appointments = append(m.appointments, ap)
	return &ap, nil
}

// staff accepts "", a number or "barber_N" and checks it against the roster.
func (m *MockClient) staff(raw string) (*uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(raw, "barber_"), 10, 64)
	if err != nil || n == 0 || int(n) > len(m.barbers) {
		return nil, mockErr(http.StatusBadRequest, "Invalid staff member")
	}
	id := uint(n)
	return &id, nil
}

// taken applies the server's rule: same date and time, and the same staff
// member or no staff on either side.
func (m *MockClient) taken(date, hhmm string, staffID *uint) bool {
	for _, ap := range m.appointments {
		if ap.Status == statusCancelled || ap.Date != date || ap.Time != hhmm {
			continue
		}
		if staffID == nil || ap.StaffID == nil || *ap.StaffID == *staffID {
			return true
		}
	}
	return false
}

func (m *MockClient) AvailableSlots(_ context.Context, date string, serviceID uint, barberID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if date == "" || serviceID == 0 {
		return nil, mockErr(http.StatusBadRequest, "Date and serviceId are required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, mockErr(http.StatusBadRequest, "Invalid date")
	}
	if m.service(serviceID) == nil {
		return nil, mockErr(http.StatusNotFound, "Service not found")
	}
	staffID, err := m.staff(barberID)
	if err != nil {
		return nil, mockErr(http.StatusBadRequest, "Invalid barberId")
	}

	free := []string{}
	for mins := 9 * 60; mins <= 18*60+30; mins += 30 {
		slot := fmt.Sprintf("%02d:%02d", mins/60, mins%60)
		if !m.taken(date, slot, staffID) {
			free = append(free, slot)
		}
	}
	return free, nil
}

// --------- Orders ---------

func (m *MockClient) Orders(context.Context) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.current()
	if err != nil {
		return nil, err
	}
	out := []Order{}
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].UserID == u.ID {
			out = append(out, m.orders[i])
		}
	}
	return out, nil
}

// Checkout only takes cash; the mock has no payment gateway.
func (m *MockClient) Checkout(_ context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.current()
	if err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, mockErr(http.StatusBadRequest, "Items are required")
	}
	switch req.PaymentMethod {
	case "", methodCash:
	case "mercadopago":
		return nil, mockErr(http.StatusBadRequest, "Payment method not available")
	default:
		return nil, mockErr(http.StatusBadRequest, "Invalid payment method")
	}

	items := make([]OrderItem, 0, len(req.Items))
	total := decimal.Zero
	for _, it := range req.Items {
		qty := it.Quantity
		if qty < 0 {
			return nil, mockErr(http.StatusBadRequest, "Quantity must be a positive number")
		}
		if qty == 0 {
			qty = 1
		}
		p := m.product(it.ProductID)
		if p == nil {
			return nil, mockErr(http.StatusBadRequest, fmt.Sprintf("Invalid product: %d", it.ProductID))
		}
		items = append(items, OrderItem{ProductID: p.ID, Quantity: qty, Price: p.Price})
		total = total.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(qty))))
	}
	amount, _ := total.Round(2).Float64()

	o := Order{
		ID:              uint(len(m.orders) + 1),
		UserID:          u.ID,
		Items:           items,
		Status:          statusPendingCash,
		TotalAmount:     amount,
		PaymentMethod:   methodCash,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       m.now().UTC(),
	}
	m.orders = append(m.orders, o)
	return &CheckoutResponse{Order: o, Message: mockCashOrderNotice}, nil
}

var _ API = (*MockClient)(nil)
