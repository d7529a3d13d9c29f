// Package client talks to the BarberCraft API. New picks the network
// implementation or an in-memory one over demo fixtures; both satisfy API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type API interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, username, password string) (*AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*Me, error)

	Services(ctx context.Context) ([]Service, error)
	Service(ctx context.Context, id uint) (*Service, error)
	Barbers(ctx context.Context) ([]Barber, error)
	Products(ctx context.Context) ([]Product, error)
	Product(ctx context.Context, id uint) (*Product, error)
	Reviews(ctx context.Context) ([]Review, error)
	Search(ctx context.Context, q string) (*SearchResult, error)

	Appointments(ctx context.Context) ([]Appointment, error)
	CreateAppointment(ctx context.Context, req NewAppointment) (*Appointment, error)
	AvailableSlots(ctx context.Context, date string, serviceID uint, barberID string) ([]string, error)

	Orders(ctx context.Context) ([]Order, error)
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error)
}

type Mode string

const (
	ModeHTTP Mode = "http"
	ModeMock Mode = "mock"
)

const DefaultBaseURL = "http://localhost:4000/api"

var ErrUnknownMode = errors.New("client: unknown mode")

type Config struct {
	Mode    Mode
	BaseURL string
	Timeout time.Duration

	// Tokens defaults to a MemoryTokenStore.
	Tokens TokenStore
	// HTTP overrides the transport client; Timeout is ignored when set.
	HTTP *http.Client
}

// New returns the implementation selected by cfg.Mode. An empty mode means
// ModeHTTP.
func New(cfg Config) (API, error) {
	if cfg.Tokens == nil {
		cfg.Tokens = NewMemoryTokenStore()
	}

	switch Mode(strings.ToLower(string(cfg.Mode))) {
	case ModeHTTP, "":
		return NewHTTPClient(cfg), nil
	case ModeMock:
		return NewMockClient(cfg.Tokens), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMode, cfg.Mode)
}
