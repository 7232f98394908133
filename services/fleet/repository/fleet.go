package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/fleettrack/internal/pkg/database"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

// FleetRepo reads vehicles, drivers and routes from Postgres
type FleetRepo struct {
	db *sqlx.DB
}

// NewFleetRepo creates a new fleet repository
func NewFleetRepo(client *database.PostgresClient) *FleetRepo {
	return &FleetRepo{db: client.GetDB()}
}

// ListVehicles returns every vehicle record
func (r *FleetRepo) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	query := `SELECT id, model, vin, status, latitude, longitude FROM vehicles ORDER BY id`

	vehicles := []models.Vehicle{}
	if err := r.db.SelectContext(ctx, &vehicles, query); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// ListDrivers returns every driver record
func (r *FleetRepo) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	query := `SELECT id, name, license_number, status, latitude, longitude FROM drivers ORDER BY id`

	drivers := []models.Driver{}
	if err := r.db.SelectContext(ctx, &drivers, query); err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// ListRoutes returns every route, most recently updated first
func (r *FleetRepo) ListRoutes(ctx context.Context) ([]models.Route, error) {
	query := `
		SELECT id, driver_id, start_location, end_location, distance_km, status, updated_at
		FROM routes
		ORDER BY updated_at DESC, id
	`

	routes := []models.Route{}
	if err := r.db.SelectContext(ctx, &routes, query); err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}
