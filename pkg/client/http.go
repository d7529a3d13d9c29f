package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// HTTPClient is the network implementation of API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

func NewHTTPClient(cfg Config) *HTTPClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	hc := cfg.HTTP
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	tokens := cfg.Tokens
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}

	return &HTTPClient{baseURL: base, http: hc, tokens: tokens}
}

// do sends body as JSON and decodes a 2xx answer into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Token()
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			apiErr.Message = e.Error
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func getList[T any](ctx context.Context, c *HTTPClient, path string) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) authenticate(ctx context.Context, path string, body any) (*AuthResponse, error) {
	var res AuthResponse
	if err := c.do(ctx, http.MethodPost, path, body, &res); err != nil {
		return nil, err
	}
	if err := c.tokens.SetToken(res.Token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	return &res, nil
}

// --------- Auth ---------

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return c.authenticate(ctx, "/auth/register", req)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/auth/login", map[string]string{"username": username, "password": password})
}

func (c *HTTPClient) Logout(context.Context) error {
	return c.tokens.Clear()
}

func (c *HTTPClient) Me(ctx context.Context) (*Me, error) {
	var me Me
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// --------- Catalog ---------

func (c *HTTPClient) Services(ctx context.Context) ([]Service, error) {
	return getList[Service](ctx, c, "/services")
}

func (c *HTTPClient) Service(ctx context.Context, id uint) (*Service, error) {
	var s Service
	if err := c.do(ctx, http.MethodGet, "/services/"+strconv.FormatUint(uint64(id), 10), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) Barbers(ctx context.Context) ([]Barber, error) {
	return getList[Barber](ctx, c, "/barbers")
}

func (c *HTTPClient) Products(ctx context.Context) ([]Product, error) {
	return getList[Product](ctx, c, "/products")
}

func (c *HTTPClient) Product(ctx context.Context, id uint) (*Product, error) {
	var p Product
	if err := c.do(ctx, http.MethodGet, "/products/"+strconv.FormatUint(uint64(id), 10), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) Reviews(ctx context.Context) ([]Review, error) {
	return getList[Review](ctx, c, "/reviews")
}

func (c *HTTPClient) Search(ctx context.Context, q string) (*SearchResult, error) {
	var res SearchResult
	if err := c.do(ctx, http.MethodGet, "/search?q="+url.QueryEscape(q), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// --------- Appointments ---------

func (c *HTTPClient) Appointments(ctx context.Context) ([]Appointment, error) {
	return getList[Appointment](ctx, c, "/appointments")
}

func (c *HTTPClient) CreateAppointment(ctx context.Context, req NewAppointment) (*Appointment, error) {
	var ap Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments", req, &ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

func (c *HTTPClient) AvailableSlots(ctx context.Context, date string, serviceID uint, barberID string) ([]string, error) {
	q := url.Values{}
	q.Set("date", date)
	q.Set("serviceId", strconv.FormatUint(uint64(serviceID), 10))
	if barberID != "" {
		q.Set("barberId", barberID)
	}

	return getList[string](ctx, c, "/availability?"+q.Encode())
}

// --------- Orders ---------

func (c *HTTPClient) Orders(ctx context.Context) ([]Order, error) {
	return getList[Order](ctx, c, "/orders")
}

func (c *HTTPClient) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	var res CheckoutResponse
	if err := c.do(ctx, http.MethodPost, "/orders/checkout", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

var _ API = (*HTTPClient)(nil)
