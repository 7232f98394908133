package gateway_http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouteServer(t *testing.T, handler http.HandlerFunc) *RouteClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewRouteClient("driver-token", models.ServicesConfig{RouteServiceURL: server.URL, Timeout: time.Second})
}

func TestRouteClient_GetRoute(t *testing.T) {
	client := newRouteServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/routes/route-1", r.URL.Path)
		assert.Equal(t, "Bearer driver-token", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, models.Route{
			RouteID:  "route-1",
			DriverID: "driver-1",
			Status:   models.RouteStatusInProgress,
		})
	})

	route, err := client.GetRoute(context.Background(), "route-1")
	require.NoError(t, err)
	assert.Equal(t, "route-1", route.RouteID)
	assert.Equal(t, models.RouteStatusInProgress, route.Status)
}

func TestRouteClient_GetRouteNotFound(t *testing.T) {
	client := newRouteServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusNotFound, nil)
	})

	route, err := client.GetRoute(context.Background(), "missing")
	assert.Error(t, err)
	assert.Nil(t, route)
}

func TestRouteClient_GetAssignedRoute(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		routes  []models.Route
		wantID  string
		wantNil bool
		wantErr bool
	}{
		{
			name:   "first assigned route",
			status: http.StatusOK,
			routes: []models.Route{{RouteID: "route-7", Status: models.RouteStatusAssigned}},
			wantID: "route-7",
		},
		{name: "no assignment", status: http.StatusOK, routes: []models.Route{}, wantNil: true},
		{name: "not found means none", status: http.StatusNotFound, wantNil: true},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newRouteServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/routes", r.URL.Path)
				assert.Equal(t, "driver-1", r.URL.Query().Get("driverId"))
				assert.Equal(t, "assigned", r.URL.Query().Get("status"))
				writeEnvelope(t, w, tt.status, tt.routes)
			})

			route, err := client.GetAssignedRoute(context.Background(), "driver-1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, route)
				return
			}
			require.NotNil(t, route)
			assert.Equal(t, tt.wantID, route.RouteID)
		})
	}
}

func TestRouteClient_StartAndEnd(t *testing.T) {
	var paths []string
	client := newRouteServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, nil)
	})

	require.NoError(t, client.StartTrip(context.Background(), "route-1"))
	require.NoError(t, client.EndTrip(context.Background(), "route-1"))
	assert.Equal(t, []string{"/routes/route-1/start", "/routes/route-1/end"}, paths)
}

func TestRouteClient_StartRejected(t *testing.T) {
	client := newRouteServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusConflict, nil)
	})

	err := client.StartTrip(context.Background(), "route-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start route route-1")
}
