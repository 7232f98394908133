package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/utils"
)

// incrWindowScript counts a request and sets the window expiry in one step. A counter
// found without an expiry gets one, so a key can never block a caller forever.
var incrWindowScript = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return n
`)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Resource    string        // key segment naming the limited resource
	Limit       int           // maximum number of requests per period
	Period      time.Duration // fixed window length
}

// RateLimiterMiddleware limits requests per caller with a fixed Redis window.
// The caller is the authenticated driver when present, otherwise the client IP.
// Redis failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if driverID, ok := DriverIDFromContext(c); ok {
				identifier = driverID
			}

			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, identifier)
			ctx := c.Request().Context()

			n, err := incrWindowScript.Run(ctx, config.RedisClient, []string{key}, config.Period.Milliseconds()).Int64()
			if err != nil {
				logger.Warn("Rate limiter unavailable", logger.Err(err))
				return next(c)
			}

			count := int(n)
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				if ttl, err := config.RedisClient.TTL(ctx, key).Result(); err == nil && ttl > 0 {
					c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				}
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}
