package gateway_http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	httpclient "github.com/piresc/fleettrack/internal/pkg/http"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

// RouteClient is an HTTP client for the route service
type RouteClient struct {
	client *httpclient.Client
}

// NewRouteClient creates a route service client authenticated with a driver token
func NewRouteClient(token string, config models.ServicesConfig) *RouteClient {
	return &RouteClient{
		client: httpclient.NewClient(httpclient.Config{
			BaseURL:     config.RouteServiceURL,
			Timeout:     config.Timeout,
			ServiceName: "route-service",
			BearerToken: token,
		}),
	}
}

// GetRoute fetches a route by id
func (g *RouteClient) GetRoute(ctx context.Context, routeID string) (*models.Route, error) {
	var route models.Route
	if err := g.client.GetJSON(ctx, "/routes/"+url.PathEscape(routeID), &route); err != nil {
		return nil, fmt.Errorf("failed to get route %s: %w", routeID, err)
	}
	return &route, nil
}

// GetAssignedRoute returns the driver's assigned route, or nil when there is none
func (g *RouteClient) GetAssignedRoute(ctx context.Context, driverID string) (*models.Route, error) {
	query := url.Values{}
	query.Set("driverId", driverID)
	query.Set("status", string(models.RouteStatusAssigned))

	var routes []models.Route
	if err := g.client.GetJSON(ctx, "/routes?"+query.Encode(), &routes); err != nil {
		if httpclient.IsStatus(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list assigned routes: %w", err)
	}
	if len(routes) == 0 {
		return nil, nil
	}
	return &routes[0], nil
}

// StartTrip marks the route as in progress
func (g *RouteClient) StartTrip(ctx context.Context, routeID string) error {
	if err := g.client.PostJSON(ctx, "/routes/"+url.PathEscape(routeID)+"/start", nil, nil); err != nil {
		return fmt.Errorf("failed to start route %s: %w", routeID, err)
	}
	return nil
}

// EndTrip marks the route as completed
func (g *RouteClient) EndTrip(ctx context.Context, routeID string) error {
	if err := g.client.PostJSON(ctx, "/routes/"+url.PathEscape(routeID)+"/end", nil, nil); err != nil {
		return fmt.Errorf("failed to end route %s: %w", routeID, err)
	}
	return nil
}
