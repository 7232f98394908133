package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	appctx "github.com/piresc/fleettrack/internal/pkg/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	DriverID string `json:"driverId"`
}

func TestNewClient(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:9991/"})

	assert.Equal(t, "http://localhost:9991", client.baseURL)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

func TestClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "/telemetry/update-location", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer driver-token", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get(APIKeyHeader))

		var body payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "drv-1", body.DriverID)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"accepted":true}}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, BearerToken: "driver-token", ServiceName: "location-service"})

	var result struct {
		Accepted bool `json:"accepted"`
	}
	err := client.PostJSON(context.Background(), "/telemetry/update-location", payload{DriverID: "drv-1"}, &result)

	require.NoError(t, err)
	assert.True(t, result.Accepted)
}

func TestClient_ForwardsRequestID(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "req-42", r.Header.Get(RequestIDHeader))
		w.Write([]byte(`{"success":true,"data":null}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, ServiceName: "route-service"})
	ctx := appctx.WithRequestID(context.Background(), "req-42")

	require.NoError(t, client.GetJSON(ctx, "/routes/r-1", nil))
}

func TestClient_GetJSON_APIKey(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		assert.Equal(t, "fleet-key", r.Header.Get(APIKeyHeader))
		w.Write([]byte(`{"success":true,"data":[{"driverId":"drv-1"},{"driverId":"drv-2"}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "fleet-key"})

	var result []payload
	require.NoError(t, client.GetJSON(context.Background(), "/drivers/live-tracking", &result))
	assert.Equal(t, []payload{{DriverID: "drv-1"}, {DriverID: "drv-2"}}, result)
}

func TestClient_StatusError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"route not found","code":404}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	err := client.PutJSON(context.Background(), "/routes/r-1", payload{}, nil)

	require.Error(t, err)
	assert.True(t, IsStatus(err, nethttp.StatusNotFound))
	assert.False(t, IsStatus(err, nethttp.StatusConflict))
	assert.Contains(t, err.Error(), "route not found")
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(Config{BaseURL: url, ServiceName: "route-service", Timeout: time.Second})
	err := client.GetJSON(context.Background(), "/routes/r-1", nil)

	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
	assert.Contains(t, err.Error(), "route-service")
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewClient(Config{BaseURL: server.URL}).GetJSON(ctx, "/", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
