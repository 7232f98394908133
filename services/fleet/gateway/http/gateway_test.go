package gateway_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpclient "github.com/piresc/fleettrack/internal/pkg/http"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveFeedClient_GetLiveDrivers(t *testing.T) {
	seen := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		status  int
		body    interface{}
		wantLen int
		wantErr bool
	}{
		{
			name:   "live drivers",
			status: http.StatusOK,
			body: map[string]interface{}{"success": true, "data": []models.LiveDriver{
				{DriverID: "d-1", VehicleID: "v-1", Latitude: 13.08, Longitude: 80.27, GPSEnabled: true, LastLocationUpdate: seen},
			}},
			wantLen: 1,
		},
		{
			name:    "empty feed",
			status:  http.StatusOK,
			body:    map[string]interface{}{"success": true, "data": []models.LiveDriver{}},
			wantLen: 0,
		},
		{
			name:    "bad key",
			status:  http.StatusUnauthorized,
			body:    map[string]interface{}{"success": false, "error": "Invalid API key", "code": 401},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/drivers/live-tracking", r.URL.Path)
				assert.Equal(t, "fleet-key", r.Header.Get(httpclient.APIKeyHeader))
				w.WriteHeader(tt.status)
				require.NoError(t, json.NewEncoder(w).Encode(tt.body))
			}))
			defer server.Close()

			client := NewLiveFeedClient("fleet-key", models.ServicesConfig{LocationServiceURL: server.URL, Timeout: time.Second})
			drivers, err := client.GetLiveDrivers(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, httpclient.IsStatus(err, http.StatusUnauthorized))
				return
			}
			require.NoError(t, err)
			assert.Len(t, drivers, tt.wantLen)
			if tt.wantLen > 0 {
				assert.True(t, seen.Equal(drivers[0].LastLocationUpdate))
			}
		})
	}
}

func TestBookingClient_AssignDriver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings/b-1/assign", r.URL.Path)
		assert.Equal(t, "fleet-key", r.Header.Get(httpclient.APIKeyHeader))

		var req models.AssignDriverRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.AssignDriverRequest{DriverID: "d-1", RouteID: "r-1"}, req)

		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    models.Booking{BookingID: "b-1", AssignedDriverID: "d-1", RouteID: "r-1", Status: "assigned"},
		}))
	}))
	defer server.Close()

	client := NewBookingClient("fleet-key", models.ServicesConfig{BookingServiceURL: server.URL, Timeout: time.Second})
	booking, err := client.AssignDriver(context.Background(), "b-1", models.AssignDriverRequest{DriverID: "d-1", RouteID: "r-1"})

	require.NoError(t, err)
	assert.Equal(t, "d-1", booking.AssignedDriverID)
	assert.Equal(t, "assigned", booking.Status)
}

func TestBookingClient_AssignDriverConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "booking already assigned", "code": 409})
	}))
	defer server.Close()

	client := NewBookingClient("fleet-key", models.ServicesConfig{BookingServiceURL: server.URL, Timeout: time.Second})
	booking, err := client.AssignDriver(context.Background(), "b-1", models.AssignDriverRequest{DriverID: "d-1", RouteID: "r-1"})

	assert.Nil(t, booking)
	assert.True(t, httpclient.IsStatus(err, http.StatusConflict))
	assert.Contains(t, err.Error(), "booking already assigned")
}
