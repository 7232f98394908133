package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/fleettrack/internal/pkg/context"
	"github.com/piresc/fleettrack/internal/pkg/logger"
)

const (
	HeaderRequestID     = "X-Request-ID"
	ContextKeyRequestID = "request_id"
)

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(log *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo write the error response so the logged status is final
				c.Error(err)
			}

			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}
			requestID := c.Response().Header().Get(HeaderRequestID)

			log.LogHTTPRequest(c.Request().Method, path, c.RealIP(), requestID, c.Response().Status, time.Since(start), err)
			return nil
		}
	}
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(HeaderRequestID, requestID)
			c.Set(ContextKeyRequestID, requestID)
			c.SetRequest(c.Request().WithContext(appctx.WithRequestID(c.Request().Context(), requestID)))

			return next(c)
		}
	}
}

// GinRequestID is RequestIDMiddleware for gin routers
func GinRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)
		c.Set(ContextKeyRequestID, requestID)
		c.Request = c.Request.WithContext(appctx.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// GinLogger is LoggerMiddleware for gin routers
func GinLogger(log *logger.AppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		var err error
		if len(c.Errors) > 0 {
			err = c.Errors.Last()
		}
		log.LogHTTPRequest(c.Request.Method, path, c.ClientIP(), c.Writer.Header().Get(HeaderRequestID), c.Writer.Status(), time.Since(start), err)
	}
}
