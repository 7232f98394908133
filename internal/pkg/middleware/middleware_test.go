package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/fleettrack/internal/pkg/context"
	jwtpkg "github.com/piresc/fleettrack/internal/pkg/jwt"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "middleware-test-secret", Expiration: time.Hour, Issuer: "test"}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func serve(mw echo.MiddlewareFunc, h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := mw(h)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestJWTAuthMiddleware(t *testing.T) {
	driverToken, _, err := jwtpkg.GenerateToken("drv-1", jwtpkg.RoleDriver, testJWT)
	require.NoError(t, err)
	otherRole, _, err := jwtpkg.GenerateToken("ops-1", "operator", testJWT)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantDriver string
	}{
		{name: "Missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "Bad token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "Not a driver", header: "Bearer " + otherRole, wantStatus: http.StatusForbidden},
		{name: "Driver token", header: "Bearer " + driverToken, wantStatus: http.StatusOK, wantDriver: "drv-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/telemetry/update-location", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			var seen string
			rec := serve(JWTAuthMiddleware(testJWT), func(c echo.Context) error {
				seen, _ = DriverIDFromContext(c)
				return okHandler(c)
			}, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDriver, seen)
		})
	}
}

func TestValidateAPIKey(t *testing.T) {
	hash, err := HashAPIKey("fleet-dashboard-key")
	require.NoError(t, err)
	validator := NewAPIKeyValidator([]string{hash, ""})

	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{name: "Missing key", key: "", wantStatus: http.StatusUnauthorized},
		{name: "Wrong key", key: "guess", wantStatus: http.StatusUnauthorized},
		{name: "Valid key", key: "fleet-dashboard-key", wantStatus: http.StatusOK},
		{name: "Valid key from cache", key: "fleet-dashboard-key", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/drivers/live-tracking", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}

			rec := serve(ValidateAPIKey(validator), okHandler, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAPIKeyValidator_CachesOnlyAcceptedKeys(t *testing.T) {
	hash, err := HashAPIKey("fleet-dashboard-key")
	require.NoError(t, err)
	validator := NewAPIKeyValidator([]string{hash})

	for i := 0; i < 5; i++ {
		assert.False(t, validator.Valid(fmt.Sprintf("guess-%d", i)))
	}
	assert.Equal(t, 0, validator.cached())

	assert.True(t, validator.Valid("fleet-dashboard-key"))
	assert.True(t, validator.Valid("fleet-dashboard-key"))
	assert.Equal(t, 1, validator.cached())
}

func TestRequestIDMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := serve(RequestIDMiddleware(), okHandler, req)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	var fromContext string
	rec = serve(RequestIDMiddleware(), func(c echo.Context) error {
		fromContext = appctx.GetRequestID(c.Request().Context())
		return okHandler(c)
	}, req)
	assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
	assert.Equal(t, "req-123", fromContext)
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	log, err := logger.NewAppLogger("test", models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := serve(PanicRecoveryMiddleware(log), func(echo.Context) error { panic("boom") }, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
}

func TestGinMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, err := logger.NewAppLogger("test", models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	r := gin.New()
	r.Use(GinRequestID(), GinLogger(log), GinPanicRecovery(log))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRateLimiterMiddleware(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mw := RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: client,
		Resource:    "telemetry",
		Limit:       2,
		Period:      time.Minute,
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/telemetry/update-location", nil)
		rec := serve(mw, okHandler, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Greater(t, mr.TTL("rate:limit:telemetry:192.0.2.1"), time.Duration(0))

	// the window resets after the period
	mr.FastForward(time.Minute)
	rec := serve(mw, okHandler, httptest.NewRequest(http.MethodPost, "/telemetry/update-location", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterMiddleware_RepairsCounterWithoutExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	// a counter left behind without a TTL
	require.NoError(t, mr.Set("rate:limit:telemetry:192.0.2.1", "50"))

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mw := RateLimiterMiddleware(RateLimiterConfig{RedisClient: client, Resource: "telemetry", Limit: 2, Period: time.Minute})

	rec := serve(mw, okHandler, httptest.NewRequest(http.MethodPost, "/telemetry/update-location", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Greater(t, mr.TTL("rate:limit:telemetry:192.0.2.1"), time.Duration(0))

	mr.FastForward(time.Minute)
	rec = serve(mw, okHandler, httptest.NewRequest(http.MethodPost, "/telemetry/update-location", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterMiddleware_RedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	mr.Close()

	mw := RateLimiterMiddleware(RateLimiterConfig{RedisClient: client, Resource: "telemetry", Limit: 1, Period: time.Minute})
	rec := serve(mw, okHandler, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
