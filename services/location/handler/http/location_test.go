package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fleettrack/internal/pkg/middleware"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/services/location"
	"github.com/piresc/fleettrack/services/location/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func newRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

const updateBody = `{"driverId":"drv-1","vehicleId":"veh-1","latitude":13.0827,"longitude":80.2707,"speedKmh":30,"accuracyMeters":6,"timestamp":"2024-05-01T09:00:00Z"}`

func TestUpdateLocation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		tokenDriver    string
		mockSetup      func(*mocks.MockLocationUC)
		expectedStatus int
		expectedData   string
	}{
		{
			name:        "Accepted",
			body:        updateBody,
			tokenDriver: "drv-1",
			mockSetup: func(m *mocks.MockLocationUC) {
				m.EXPECT().UpdateLocation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, p models.DevicePosition) (bool, error) {
						assert.Equal(t, "drv-1", p.DriverID)
						assert.Equal(t, "veh-1", p.VehicleID)
						assert.True(t, p.CapturedAt.Equal(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)))
						return true, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedData:   `{"accepted":true}`,
		},
		{
			name:        "Stale sample",
			body:        updateBody,
			tokenDriver: "drv-1",
			mockSetup: func(m *mocks.MockLocationUC) {
				m.EXPECT().UpdateLocation(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   `{"accepted":false}`,
		},
		{
			name:           "Token for another driver",
			body:           updateBody,
			tokenDriver:    "drv-2",
			mockSetup:      func(*mocks.MockLocationUC) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Malformed body",
			body:           `{"driverId":`,
			tokenDriver:    "drv-1",
			mockSetup:      func(*mocks.MockLocationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Validation error",
			body:        updateBody,
			tokenDriver: "drv-1",
			mockSetup: func(m *mocks.MockLocationUC) {
				m.EXPECT().UpdateLocation(gomock.Any(), gomock.Any()).
					Return(false, fmt.Errorf("%w: latitude must be between -90 and 90", location.ErrInvalidPosition))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Storage error",
			body:        updateBody,
			tokenDriver: "drv-1",
			mockSetup: func(m *mocks.MockLocationUC) {
				m.EXPECT().UpdateLocation(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockLocationUC(ctrl)
			tt.mockSetup(mockUC)
			h := NewLocationHandler(mockUC)

			e := echo.New()
			req, rec := newRequest(http.MethodPost, "/telemetry/update-location", tt.body)
			c := e.NewContext(req, rec)
			c.Set(middleware.ContextKeyDriverID, tt.tokenDriver)

			// Act
			err := h.UpdateLocation(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedData != "" {
				env := decode(t, rec)
				assert.True(t, env.Success)
				assert.JSONEq(t, tt.expectedData, string(env.Data))
			}
		})
	}
}

func TestGetLiveDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seen := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	mockUC := mocks.NewMockLocationUC(ctrl)
	mockUC.EXPECT().GetLiveDrivers(gomock.Any()).Return([]models.DriverLiveState{
		{
			DriverID:   "drv-1",
			Latest:     models.DevicePosition{DriverID: "drv-1", VehicleID: "veh-1", Latitude: 13.08, Longitude: 80.27, CapturedAt: seen},
			GPSEnabled: true,
			LastSeenAt: seen,
		},
	}, nil)

	h := NewLocationHandler(mockUC)
	e := echo.New()
	req, rec := newRequest(http.MethodGet, "/drivers/live-tracking", "")

	require.NoError(t, h.GetLiveDrivers(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var drivers []models.LiveDriver
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &drivers))
	require.Len(t, drivers, 1)
	assert.Equal(t, "drv-1", drivers[0].DriverID)
	assert.Equal(t, "veh-1", drivers[0].VehicleID)
	assert.True(t, drivers[0].GPSEnabled)
	assert.True(t, drivers[0].LastLocationUpdate.Equal(seen))
}

func TestGetLiveDrivers_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	mockUC.EXPECT().GetLiveDrivers(gomock.Any()).Return([]models.DriverLiveState{}, nil)

	e := echo.New()
	req, rec := newRequest(http.MethodGet, "/drivers/live-tracking", "")
	require.NoError(t, NewLocationHandler(mockUC).GetLiveDrivers(e.NewContext(req, rec)))

	assert.Equal(t, "[]", string(decode(t, rec).Data))
}

func TestGetNearbyDrivers(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockSetup      func(*mocks.MockLocationUC)
		expectedStatus int
	}{
		{
			name:  "Default radius",
			query: "lat=13.08&lng=80.27",
			mockSetup: func(m *mocks.MockLocationUC) {
				m.EXPECT().GetNearbyDrivers(gomock.Any(), models.Location{Latitude: 13.08, Longitude: 80.27}, 5.0).
					Return([]models.NearbyDriver{{LiveDriver: models.LiveDriver{DriverID: "drv-1"}, DistanceKm: 1.5}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing coordinates",
			query:          "lat=13.08",
			mockSetup:      func(*mocks.MockLocationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad radius",
			query:          "lat=13.08&lng=80.27&radius_km=far",
			mockSetup:      func(*mocks.MockLocationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "Invalid radius from usecase",
			query: "lat=13.08&lng=80.27&radius_km=-1",
			mockSetup: func(m *mocks.MockLocationUC) {
				m.EXPECT().GetNearbyDrivers(gomock.Any(), gomock.Any(), -1.0).Return(nil, location.ErrInvalidPosition)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockLocationUC(ctrl)
			tt.mockSetup(mockUC)

			e := echo.New()
			req, rec := newRequest(http.MethodGet, "/drivers/nearby?"+tt.query, "")
			require.NoError(t, NewLocationHandler(mockUC).GetNearbyDrivers(e.NewContext(req, rec)))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestSetGPSEnabled(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*mocks.MockLocationUC)
		expectedStatus int
	}{
		{
			name: "Disable",
			body: `{"enabled":false}`,
			mockSetup: func(m *mocks.MockLocationUC) {
				m.EXPECT().SetGPSEnabled(gomock.Any(), "drv-1", false).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing flag",
			body:           `{}`,
			mockSetup:      func(*mocks.MockLocationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown driver",
			body: `{"enabled":true}`,
			mockSetup: func(m *mocks.MockLocationUC) {
				m.EXPECT().SetGPSEnabled(gomock.Any(), "drv-1", true).Return(location.ErrDriverNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockLocationUC(ctrl)
			tt.mockSetup(mockUC)

			e := echo.New()
			req, rec := newRequest(http.MethodPut, "/drivers/drv-1/gps", tt.body)
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues("drv-1")

			require.NoError(t, NewLocationHandler(mockUC).SetGPSEnabled(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
