package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()

	var auths []string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "user123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":2,"username":"demo","role":"USER"}}`))
	})
	mux.HandleFunc("/api/appointments", func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":1,"service_id":1,"date":"2030-01-07","time":"10:00","status":"pending"}]`))
	})
	mux.HandleFunc("/api/availability", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("serviceId") != "3" || q.Get("barberId") != "barber_2" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Invalid barberId"}`))
			return
		}
		_, _ = w.Write([]byte(`["09:00","09:30"]`))
	})
	mux.HandleFunc("/api/services/7", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &auths
}

func TestHTTPClient_LoginStoresTokenAndSendsBearer(t *testing.T) {
	srv, auths := newTestServer(t)
	tokens := NewMemoryTokenStore()
	c := NewHTTPClient(Config{BaseURL: srv.URL + "/api/", Tokens: tokens})
	ctx := context.Background()

	res, err := c.Login(ctx, "demo", "user123")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.Token)
	assert.Equal(t, "demo", res.User.Username)

	stored, _ := tokens.Token()
	assert.Equal(t, "tok-1", stored)

	aps, err := c.Appointments(ctx)
	require.NoError(t, err)
	require.Len(t, aps, 1)
	assert.Equal(t, "10:00", aps[0].Time)
	assert.Equal(t, []string{"Bearer tok-1"}, *auths)

	require.NoError(t, c.Logout(ctx))
	_, err = c.Appointments(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", (*auths)[1])
}

func TestHTTPClient_ErrorMapping(t *testing.T) {
	srv, _ := newTestServer(t)
	tokens := NewMemoryTokenStore()
	c := NewHTTPClient(Config{BaseURL: srv.URL + "/api", Tokens: tokens})
	ctx := context.Background()

	_, err := c.Login(ctx, "demo", "wrong")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	stored, _ := tokens.Token()
	assert.Empty(t, stored)

	_, err = c.Service(ctx, 7)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
	assert.Equal(t, "barbercraft: 502 Bad Gateway", err.Error())

	_, err = c.Products(ctx)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestHTTPClient_AvailableSlotsQuery(t *testing.T) {
	srv, _ := newTestServer(t)
	c := NewHTTPClient(Config{BaseURL: srv.URL + "/api"})

	slots, err := c.AvailableSlots(context.Background(), "2030-01-07", 3, "barber_2")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestNew_SelectsMode(t *testing.T) {
	api, err := New(Config{})
	require.NoError(t, err)
	assert.IsType(t, &HTTPClient{}, api)
	assert.Equal(t, DefaultBaseURL, api.(*HTTPClient).baseURL)

	api, err = New(Config{Mode: "MOCK"})
	require.NoError(t, err)
	assert.IsType(t, &MockClient{}, api)

	_, err = New(Config{Mode: "grpc"})
	assert.ErrorIs(t, err, ErrUnknownMode)
}
