package gateway_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, data interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]interface{}{"success": status < 300, "data": data}
	if status >= 300 {
		body = map[string]interface{}{"success": false, "error": "rejected", "code": status}
	}
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestLocationClient_SendLocation(t *testing.T) {
	capturedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	position := models.DevicePosition{
		DriverID:       "driver-1",
		VehicleID:      "vehicle-1",
		Latitude:       13.0827,
		Longitude:      80.2707,
		SpeedKmh:       36,
		AccuracyMeters: 8,
		CapturedAt:     capturedAt,
	}

	tests := []struct {
		name         string
		status       int
		accepted     bool
		wantAccepted bool
		wantErr      bool
	}{
		{name: "accepted", status: http.StatusOK, accepted: true, wantAccepted: true},
		{name: "out of order sample", status: http.StatusOK, accepted: false, wantAccepted: false},
		{name: "token rejected", status: http.StatusUnauthorized, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/telemetry/update-location", r.URL.Path)
				assert.Equal(t, "Bearer driver-token", r.Header.Get("Authorization"))

				var body models.LocationUpdateRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "driver-1", body.DriverID)
				assert.Equal(t, "vehicle-1", body.VehicleID)
				assert.Equal(t, 36.0, body.SpeedKmh)
				assert.True(t, capturedAt.Equal(body.Timestamp))

				writeEnvelope(t, w, tt.status, models.LocationUpdateResult{Accepted: tt.accepted})
			}))
			defer server.Close()

			client := NewLocationClient(server.URL, "driver-token", models.ServicesConfig{Timeout: time.Second})
			accepted, err := client.SendLocation(context.Background(), position)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccepted, accepted)
		})
	}
}

func TestLocationClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := NewLocationClient(server.URL, "driver-token", models.ServicesConfig{Timeout: time.Second})
	_, err := client.SendLocation(context.Background(), models.DevicePosition{DriverID: "driver-1"})
	assert.Error(t, err)
}
