package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/auth"
	"github.com/BruksfildServices01/barbercraft/internal/config"
	"github.com/BruksfildServices01/barbercraft/internal/dbtest"
	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/models"
	"github.com/BruksfildServices01/barbercraft/internal/routes"
	"github.com/BruksfildServices01/barbercraft/internal/storage"
)

func init() { gin.SetMode(gin.TestMode) }

// ======================================================
// HARNESS
// ======================================================

type harness struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	tokens *auth.TokenIssuer
	hasher *auth.Hasher
}

type option func(*config.Config, *routes.Deps)

func withStore(s storage.ObjectStore) option {
	return func(_ *config.Config, d *routes.Deps) { d.Store = s }
}

func withAuthLimit(max int) option {
	return func(c *config.Config, _ *routes.Deps) {
		c.RateLimit = config.RateLimit{Enabled: true, Window: time.Minute, AuthMax: max, GeneralMax: 1000}
	}
}

func newHarness(t *testing.T, opts ...option) *harness {
	t.Helper()

	gdb := dbtest.Open(t)
	cfg := &config.Config{
		AppEnv:       "test",
		JWTSecret:    "test-secret",
		JWTTTL:       time.Hour,
		FrontendURL:  "http://localhost:5173",
		MaxBodyBytes: 1 << 20,
	}

	logs := audit.New(gdb)
	dispatcher := audit.NewDispatcher(logs, zap.NewNop())
	t.Cleanup(dispatcher.Close)

	h := &harness{
		t:      t,
		db:     gdb,
		tokens: auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		hasher: auth.NewHasher(4),
	}

	deps := routes.Deps{
		DB:        gdb,
		Config:    cfg,
		Log:       zap.NewNop(),
		Audit:     dispatcher,
		AuditLogs: logs,
		Tokens:    h.tokens,
		Hasher:    h.hasher,
	}
	for _, o := range opts {
		o(cfg, &deps)
	}

	h.router = routes.NewRouter(deps)
	return h
}

func (h *harness) do(method, path, token string, body any) *httptest.ResponseRecorder {
	h.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["error"]
}

// user inserts an account directly and returns it with a valid token.
func (h *harness) user(username, role string) (models.User, string) {
	h.t.Helper()

	hash, err := h.hasher.Hash("secret1")
	require.NoError(h.t, err)

	u := models.User{Username: username, PasswordHash: hash, Role: role, Name: strings.ToUpper(username[:1]) + username[1:]}
	require.NoError(h.t, h.db.Create(&u).Error)

	token, err := h.tokens.Issue(&u)
	require.NoError(h.t, err)
	return u, token
}

type catalog struct {
	cut, buzz    models.Service
	marcus       models.Staff
	pomade, comb models.Product
}

func (h *harness) catalog() catalog {
	h.t.Helper()

	c := catalog{
		cut:    models.Service{Name: "Signature Cut", Description: "Precision cutting", Price: 65, Duration: 45, Category: "Haircut", Featured: true},
		buzz:   models.Service{Name: "Buzz Cut", Description: "Clean buzz", Price: 25, Duration: 20, Category: "Haircut"},
		marcus: models.Staff{Name: "Marcus Johnson", Bio: "Classic cuts", Specialties: []string{"Classic Cuts"}},
		pomade: models.Product{Name: "Pomade", Description: "Strong hold", Price: 10, InStock: true, StockCount: 5},
		comb:   models.Product{Name: "Comb", Description: "Wooden comb", Price: 19.99, InStock: true, StockCount: 5},
	}
	require.NoError(h.t, h.db.Create(&c.cut).Error)
	require.NoError(h.t, h.db.Create(&c.buzz).Error)
	require.NoError(h.t, h.db.Create(&c.marcus).Error)
	require.NoError(h.t, h.db.Create(&c.pomade).Error)
	require.NoError(h.t, h.db.Create(&c.comb).Error)
	return c
}

// ======================================================
// SCENARIOS
// ======================================================

func TestBookingEndToEnd(t *testing.T) {
	h := newHarness(t)
	c := h.catalog()

	w := h.do(http.MethodPost, "/api/auth/register", "", gin.H{"username": "demo", "password": "user123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reg := decode[dto.AuthResponse](t, w)
	assert.Equal(t, "demo", reg.User.Username)
	assert.Equal(t, models.RoleUser, reg.User.Role)

	w = h.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "demo", "password": "user123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := decode[dto.AuthResponse](t, w).Token

	claims, err := h.tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "demo", claims.Username)

	w = h.do(http.MethodPost, "/api/appointments", token, gin.H{
		"service_id": c.cut.ID, "date": "2025-03-01", "time": "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ap := decode[dto.AppointmentView](t, w)
	assert.Equal(t, 65.0, ap.TotalPrice)
	assert.Equal(t, "confirmed", ap.Status)
	require.NotNil(t, ap.ServiceName)
	assert.Equal(t, "Signature Cut", *ap.ServiceName)

	w = h.do(http.MethodGet, "/api/availability?date=2025-03-01&serviceId=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	slots := decode[[]string](t, w)
	assert.NotContains(t, slots, "10:00")
	assert.Len(t, slots, 19)

	w = h.do(http.MethodPost, "/api/appointments", token, gin.H{
		"service_id": c.cut.ID, "staff_id": "barber_1", "date": "2025-03-01", "time": "10:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "This time slot is already booked", errorOf(t, w))
}

func TestAuthErrors(t *testing.T) {
	h := newHarness(t)
	h.user("taken", models.RoleUser)

	tests := []struct {
		name   string
		path   string
		body   gin.H
		status int
		msg    string
	}{
		{"missing fields", "/api/auth/register", gin.H{}, http.StatusBadRequest, "Username and password required"},
		{"short password", "/api/auth/register", gin.H{"username": "new", "password": "12345"}, http.StatusBadRequest, "Password must be at least 6 characters"},
		{"duplicate", "/api/auth/register", gin.H{"username": "taken", "password": "123456"}, http.StatusBadRequest, "Username already exists"},
		{"admin signup", "/api/auth/register", gin.H{"username": "boss", "password": "123456", "role": "ADMIN"}, http.StatusForbidden, "Admin registration is disabled"},
		{"wrong password", "/api/auth/login", gin.H{"username": "taken", "password": "nope!!"}, http.StatusUnauthorized, "Invalid credentials"},
		{"unknown user", "/api/auth/login", gin.H{"username": "ghost", "password": "secret1"}, http.StatusUnauthorized, "Invalid credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := h.do(http.MethodPost, tt.path, "", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, errorOf(t, w))
		})
	}

	var count int64
	require.NoError(t, h.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMe(t *testing.T) {
	h := newHarness(t)
	u, token := h.user("alice", models.RoleUser)

	w := h.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[dto.MeResponse](t, w)
	assert.Equal(t, u.ID, me.ID)
	assert.Equal(t, "Alice", me.Name)

	w = h.do(http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access token required", errorOf(t, w))

	w = h.do(http.MethodGet, "/api/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", errorOf(t, w))
}

func TestAppointmentScope(t *testing.T) {
	h := newHarness(t)
	c := h.catalog()
	_, aliceToken := h.user("alice", models.RoleUser)
	_, bobToken := h.user("bob", models.RoleUser)
	_, adminToken := h.user("admin", models.RoleAdmin)

	w := h.do(http.MethodPost, "/api/appointments", aliceToken, gin.H{
		"service_id": c.cut.ID, "date": "2025-03-02", "time": "11:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[dto.AppointmentView](t, w).ID
	path := "/api/appointments/" + itoa(id)

	w = h.do(http.MethodGet, path, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Appointment not found", errorOf(t, w))

	w = h.do(http.MethodGet, path, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodPut, path, bobToken, gin.H{"notes": "mine now"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Appointment not found or access denied", errorOf(t, w))

	w = h.do(http.MethodDelete, path, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(http.MethodGet, "/api/appointments", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]dto.AppointmentView](t, w))

	w = h.do(http.MethodGet, "/api/bookings", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.AppointmentView](t, w), 1)

	w = h.do(http.MethodPut, path, aliceToken, gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "cancelled", decode[dto.AppointmentView](t, w).Status)

	w = h.do(http.MethodGet, "/api/availability?date=2025-03-02&serviceId=1", "", nil)
	assert.Contains(t, decode[[]string](t, w), "11:00")

	w = h.do(http.MethodDelete, path, aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Appointment deleted successfully", decode[map[string]string](t, w)["message"])
}

func TestCatalogAdminOnly(t *testing.T) {
	h := newHarness(t)
	h.catalog()
	_, userToken := h.user("alice", models.RoleUser)
	_, adminToken := h.user("admin", models.RoleAdmin)

	body := gin.H{"name": "Kids Cut", "price": 20, "duration": 25}

	w := h.do(http.MethodPost, "/api/services", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(http.MethodPost, "/api/services", userToken, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Admin access required", errorOf(t, w))

	w = h.do(http.MethodPost, "/api/services", adminToken, gin.H{"name": "No price"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name, price, and duration are required", errorOf(t, w))

	w = h.do(http.MethodPost, "/api/services", adminToken, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Service](t, w)
	assert.Equal(t, "Haircut", created.Category)

	w = h.do(http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	services := decode[[]models.Service](t, w)
	require.Len(t, services, 3)
	assert.Equal(t, "Signature Cut", services[0].Name)
	assert.Equal(t, "Buzz Cut", services[1].Name)
	assert.Equal(t, "Kids Cut", services[2].Name)

	path := "/api/services/" + itoa(created.ID)
	w = h.do(http.MethodPut, path, adminToken, gin.H{"name": "Kids Cut", "price": 22, "duration": 25, "featured": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 22.0, decode[models.Service](t, w).Price)

	w = h.do(http.MethodDelete, path, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Service deleted successfully", decode[map[string]string](t, w)["message"])

	w = h.do(http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Service not found", errorOf(t, w))

	w = h.do(http.MethodDelete, "/api/products/1", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProductDefaults(t *testing.T) {
	h := newHarness(t)
	_, adminToken := h.user("admin", models.RoleAdmin)

	w := h.do(http.MethodPost, "/api/products", adminToken, gin.H{"name": "Comb", "price": 9.5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name, description, and price are required", errorOf(t, w))

	w = h.do(http.MethodPost, "/api/products", adminToken, gin.H{"name": "Comb", "description": "Wood", "price": 9.5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	p := decode[models.Product](t, w)
	assert.Equal(t, "Tools", p.Category)
	assert.Equal(t, "BarberCraft", p.Brand)
	assert.True(t, p.InStock)
	assert.Equal(t, 10, p.StockCount)

	w = h.do(http.MethodPut, "/api/products/"+itoa(p.ID), adminToken, gin.H{
		"name": "Comb", "description": "Wood", "price": 9.5, "in_stock": false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Product](t, w)
	assert.False(t, updated.InStock)
	assert.Equal(t, 10, updated.StockCount)
}

func TestCheckout(t *testing.T) {
	h := newHarness(t)
	c := h.catalog()
	_, token := h.user("alice", models.RoleUser)
	_, other := h.user("bob", models.RoleUser)

	w := h.do(http.MethodPost, "/api/orders/checkout", token, gin.H{
		"items": []gin.H{{"product_id": c.pomade.ID, "quantity": 2, "price": 0.01}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := decode[dto.CheckoutResponse](t, w)
	assert.Equal(t, 20.0, res.Order.TotalAmount)
	assert.Equal(t, "pending_cash", res.Order.Status)
	assert.Equal(t, "Order created successfully. Payment method: Cash on delivery.", res.Message)

	w = h.do(http.MethodPost, "/api/orders/checkout", token, gin.H{
		"items": []gin.H{{"id": c.comb.ID, "quantity": 3}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 59.97, decode[dto.CheckoutResponse](t, w).Order.TotalAmount)

	var before int64
	require.NoError(t, h.db.Model(&models.Order{}).Count(&before).Error)

	w = h.do(http.MethodPost, "/api/orders/checkout", token, gin.H{
		"items": []gin.H{{"product_id": c.pomade.ID, "quantity": 1}, {"product_id": 999, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid product: 999", errorOf(t, w))

	var after int64
	require.NoError(t, h.db.Model(&models.Order{}).Count(&after).Error)
	assert.Equal(t, before, after)

	w = h.do(http.MethodPost, "/api/orders/checkout", token, gin.H{"items": []gin.H{}})
	assert.Equal(t, "Items are required", errorOf(t, w))

	w = h.do(http.MethodPost, "/api/orders/checkout", token, gin.H{
		"items": []gin.H{{"product_id": c.pomade.ID}}, "payment_method": "mercadopago",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Payment method not available", errorOf(t, w))

	// A later price edit leaves history alone.
	require.NoError(t, h.db.Model(&c.pomade).Update("price", 99).Error)

	w = h.do(http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decode[[]models.Order](t, w)
	require.Len(t, orders, 2)
	assert.Equal(t, 20.0, orders[1].TotalAmount)

	w = h.do(http.MethodGet, "/api/orders", other, nil)
	assert.Empty(t, decode[[]models.Order](t, w))
}

func TestReviews(t *testing.T) {
	h := newHarness(t)
	c := h.catalog()
	_, token := h.user("alice", models.RoleUser)

	w := h.do(http.MethodPost, "/api/reviews", token, gin.H{"rating": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rating must be between 1 and 5", errorOf(t, w))

	w = h.do(http.MethodPost, "/api/reviews", token, gin.H{
		"rating": 5, "comment": "Great", "service_id": c.cut.ID, "staff_id": "barber_1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	r := decode[dto.ReviewView](t, w)
	assert.Equal(t, "Alice", r.CustomerName)
	require.NotNil(t, r.ServiceName)
	assert.Equal(t, "Signature Cut", *r.ServiceName)
	require.NotNil(t, r.StaffName)
	assert.Equal(t, "Marcus Johnson", *r.StaffName)

	w = h.do(http.MethodGet, "/api/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.ReviewView](t, w), 1)
}

func TestSearchAndBarbers(t *testing.T) {
	h := newHarness(t)
	h.catalog()

	w := h.do(http.MethodGet, "/api/search", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Search query required", errorOf(t, w))

	w = h.do(http.MethodGet, "/api/search?q=CUT", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[dto.SearchResult](t, w)
	assert.Len(t, res.Services, 2)
	require.Len(t, res.Barbers, 1)
	assert.Equal(t, "barber_1", res.Barbers[0].ID)
	assert.Empty(t, res.Products)

	w = h.do(http.MethodGet, "/api/barbers/barber_1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"yearsExperience"`)

	w = h.do(http.MethodGet, "/api/barbers/barber_9", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomersAndAuditLogs(t *testing.T) {
	h := newHarness(t)
	h.user("alice", models.RoleUser)
	_, adminToken := h.user("admin", models.RoleAdmin)

	w := h.do(http.MethodGet, "/api/customers", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	customers := decode[[]dto.Customer](t, w)
	require.Len(t, customers, 1)
	assert.Equal(t, "alice", customers[0].Username)
	assert.NotContains(t, w.Body.String(), "password")

	w = h.do(http.MethodPost, "/api/auth/register", "", gin.H{"username": "carol", "password": "123456"})
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Eventually(t, func() bool {
		w := h.do(http.MethodGet, "/api/audit-logs?action=user_registered", adminToken, nil)
		var page audit.Page
		return w.Code == http.StatusOK && json.Unmarshal(w.Body.Bytes(), &page) == nil && page.Total == 1
	}, 2*time.Second, 20*time.Millisecond)
}

func TestOpsRoutes(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := h.do(http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]string](t, w)
		assert.Equal(t, "ok", body["status"])
		_, err := time.Parse(time.RFC3339, body["timestamp"])
		assert.NoError(t, err)
	}

	w := h.do(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Endpoint not found", errorOf(t, w))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = h.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "barbercraft_http_requests_total")
}

func TestAuthRateLimit(t *testing.T) {
	h := newHarness(t, withAuthLimit(2))

	for i := 0; i < 2; i++ {
		w := h.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "x", "password": "y"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := h.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "x", "password": "y"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too many authentication attempts, please try again later.", errorOf(t, w))

	w = h.do(http.MethodGet, "/api/services", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// ======================================================
// IMAGES
// ======================================================

type memStore struct {
	mu   sync.Mutex
	keys []string
}

func (m *memStore) Put(_ context.Context, key, _ string, _ []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	return "https://cdn.test/" + key, nil
}

func (h *harness) upload(path, token string, file []byte) *httptest.ResponseRecorder {
	h.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "photo.png")
	require.NoError(h.t, err)
	_, err = fw.Write(file)
	require.NoError(h.t, err)
	require.NoError(h.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func pngBytes(t *testing.T, w, hgt int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, hgt))
	for x := 0; x < w; x++ {
		img.Set(x, x%hgt, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageUpload(t *testing.T) {
	t.Run("storage not configured", func(t *testing.T) {
		h := newHarness(t)
		h.catalog()
		_, adminToken := h.user("admin", models.RoleAdmin)

		w := h.upload("/api/services/1/image", adminToken, pngBytes(t, 10, 10))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "Image storage not configured", errorOf(t, w))
	})

	t.Run("converts and links", func(t *testing.T) {
		store := &memStore{}
		h := newHarness(t, withStore(store))
		c := h.catalog()
		_, adminToken := h.user("admin", models.RoleAdmin)
		_, userToken := h.user("alice", models.RoleUser)

		w := h.upload("/api/products/1/image", userToken, pngBytes(t, 10, 10))
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = h.upload("/api/products/1/image", adminToken, []byte("not an image"))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = h.upload("/api/products/1/image", adminToken, pngBytes(t, 64, 32))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		p := decode[models.Product](t, w)
		assert.Equal(t, c.pomade.ID, p.ID)
		assert.True(t, strings.HasPrefix(p.Image, "https://cdn.test/products/1-"), p.Image)
		assert.True(t, strings.HasSuffix(p.Image, ".webp"), p.Image)
		require.Len(t, store.keys, 1)

		w = h.upload("/api/services/99/image", adminToken, pngBytes(t, 10, 10))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
