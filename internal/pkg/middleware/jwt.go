package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/fleettrack/internal/pkg/context"
	jwtpkg "github.com/piresc/fleettrack/internal/pkg/jwt"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/utils"
)

// ContextKeyDriverID is the echo context key holding the authenticated driver id
const ContextKeyDriverID = "driver_id"

// JWTAuthMiddleware verifies the bearer token and stores its subject as the driver id
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
			if claims.Role != jwtpkg.RoleDriver {
				return utils.ForbiddenResponse(c, "Token is not a driver token")
			}

			c.Set(ContextKeyDriverID, claims.DriverID)
			c.SetRequest(c.Request().WithContext(appctx.WithDriverID(c.Request().Context(), claims.DriverID)))
			return next(c)
		}
	}
}

// DriverIDFromContext returns the driver id set by JWTAuthMiddleware
func DriverIDFromContext(c echo.Context) (string, bool) {
	id, ok := c.Get(ContextKeyDriverID).(string)
	return id, ok && id != ""
}
