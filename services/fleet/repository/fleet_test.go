package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/fleettrack/internal/pkg/database"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*FleetRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	client := database.NewPostgresClientFromDB(sqlx.NewDb(db, "pgx"))
	return NewFleetRepo(client), mock
}

func TestFleetRepo_ListVehicles(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, vehicles []models.Vehicle, err error)
	}{
		{
			name: "Success with and without coordinates",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "model", "vin", "status", "latitude", "longitude"}).
					AddRow("v-1", "Tata Ace", "MAT123", "active", 13.05, 80.25).
					AddRow("v-2", "Mahindra Bolero", "MHB555", "active", nil, nil)
				mock.ExpectQuery("^SELECT id, model, vin, status, latitude, longitude FROM vehicles").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, vehicles []models.Vehicle, err error) {
				require.NoError(t, err)
				require.Len(t, vehicles, 2)

				loc, ok := vehicles[0].PersistedLocation()
				assert.True(t, ok)
				assert.Equal(t, 13.05, loc.Latitude)

				_, ok = vehicles[1].PersistedLocation()
				assert.False(t, ok)
			},
		},
		{
			name: "Empty table",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM vehicles").
					WillReturnRows(sqlmock.NewRows([]string{"id", "model", "vin", "status", "latitude", "longitude"}))
			},
			assertFunc: func(t *testing.T, vehicles []models.Vehicle, err error) {
				require.NoError(t, err)
				assert.NotNil(t, vehicles)
				assert.Empty(t, vehicles)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM vehicles").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, vehicles []models.Vehicle, err error) {
				assert.Error(t, err)
				assert.Nil(t, vehicles)
				assert.Contains(t, err.Error(), "failed to list vehicles")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tc.mockSetup(mock)

			vehicles, err := repo.ListVehicles(context.Background())

			tc.assertFunc(t, vehicles, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFleetRepo_ListDrivers(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{"id", "name", "license_number", "status", "latitude", "longitude"}).
		AddRow("d-1", "Priya Raman", "TN01 2020", "on_duty", nil, nil).
		AddRow("d-2", "Arun Kumar", "TN02 2019", "off_duty", 13.0, 80.2)
	mock.ExpectQuery("^SELECT id, name, license_number, status, latitude, longitude FROM drivers").
		WillReturnRows(rows)

	drivers, err := repo.ListDrivers(context.Background())

	require.NoError(t, err)
	require.Len(t, drivers, 2)
	assert.Equal(t, "Priya Raman", drivers[0].Name)
	assert.Equal(t, "TN01 2020", drivers[0].LicenseNumber)
	_, ok := drivers[1].PersistedLocation()
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFleetRepo_ListDriversError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("^SELECT (.+) FROM drivers").WillReturnError(errors.New("connection reset"))

	drivers, err := repo.ListDrivers(context.Background())

	assert.Nil(t, drivers)
	assert.Contains(t, err.Error(), "failed to list drivers")
}

func TestFleetRepo_ListRoutes(t *testing.T) {
	repo, mock := newMockRepo(t)
	updated := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "driver_id", "start_location", "end_location", "distance_km", "status", "updated_at"}).
		AddRow("r-1", "d-1", "Guindy", "Egmore", 11.1, "in_progress", updated)
	mock.ExpectQuery("SELECT id, driver_id, start_location, end_location, distance_km, status, updated_at\\s+FROM routes").
		WillReturnRows(rows)

	routes, err := repo.ListRoutes(context.Background())

	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, models.RouteStatusInProgress, routes[0].Status)
	assert.Equal(t, 11.1, routes[0].DistanceKm)
	assert.Equal(t, updated, routes[0].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
