package gateway_http

import (
	"context"
	"fmt"

	httpclient "github.com/piresc/fleettrack/internal/pkg/http"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

// LocationClient sends device samples to the location service as the signed-in driver
type LocationClient struct {
	client *httpclient.Client
}

// NewLocationClient creates a location service client authenticated with a driver token
func NewLocationClient(baseURL, token string, config models.ServicesConfig) *LocationClient {
	return &LocationClient{
		client: httpclient.NewClient(httpclient.Config{
			BaseURL:     baseURL,
			Timeout:     config.Timeout,
			ServiceName: "location-service",
			BearerToken: token,
		}),
	}
}

// SendLocation posts one sample and reports whether the aggregator kept it
func (g *LocationClient) SendLocation(ctx context.Context, position models.DevicePosition) (bool, error) {
	var result models.LocationUpdateResult
	if err := g.client.PostJSON(ctx, "/telemetry/update-location", models.NewLocationUpdateRequest(position), &result); err != nil {
		return false, fmt.Errorf("failed to send location update: %w", err)
	}
	return result.Accepted, nil
}
