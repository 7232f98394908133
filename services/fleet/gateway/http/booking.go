package gateway_http

import (
	"context"
	"fmt"
	"net/url"

	httpclient "github.com/piresc/fleettrack/internal/pkg/http"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

// BookingClient is an HTTP client for the booking service
type BookingClient struct {
	client *httpclient.Client
}

// NewBookingClient creates a booking service client authenticated with a service key
func NewBookingClient(apiKey string, config models.ServicesConfig) *BookingClient {
	return &BookingClient{
		client: httpclient.NewClient(httpclient.Config{
			BaseURL:     config.BookingServiceURL,
			Timeout:     config.Timeout,
			ServiceName: "booking-service",
			APIKey:      apiKey,
		}),
	}
}

// AssignDriver assigns a driver and route to a booking
func (g *BookingClient) AssignDriver(ctx context.Context, bookingID string, req models.AssignDriverRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := g.client.PostJSON(ctx, "/bookings/"+url.PathEscape(bookingID)+"/assign", req, &booking); err != nil {
		return nil, fmt.Errorf("failed to assign driver to booking %s: %w", bookingID, err)
	}
	return &booking, nil
}
