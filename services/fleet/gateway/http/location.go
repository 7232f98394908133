package gateway_http

import (
	"context"
	"fmt"

	httpclient "github.com/piresc/fleettrack/internal/pkg/http"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

// LiveFeedClient reads the live driver set from the location service
type LiveFeedClient struct {
	client *httpclient.Client
}

// NewLiveFeedClient creates a location service client authenticated with a service key
func NewLiveFeedClient(apiKey string, config models.ServicesConfig) *LiveFeedClient {
	return &LiveFeedClient{
		client: httpclient.NewClient(httpclient.Config{
			BaseURL:     config.LocationServiceURL,
			Timeout:     config.Timeout,
			ServiceName: "location-service",
			APIKey:      apiKey,
		}),
	}
}

// GetLiveDrivers returns every GPS-enabled driver with its latest sample
func (g *LiveFeedClient) GetLiveDrivers(ctx context.Context) ([]models.LiveDriver, error) {
	drivers := []models.LiveDriver{}
	if err := g.client.GetJSON(ctx, "/drivers/live-tracking", &drivers); err != nil {
		return nil, fmt.Errorf("failed to get live drivers: %w", err)
	}
	return drivers, nil
}
