package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a stack trace
// and answers 500 with the standard error envelope
func PanicRecoveryMiddleware(log *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				logPanic(log, r, c.Request().Method, c.Request().URL.Path, c.Response().Header().Get(HeaderRequestID))
				if !c.Response().Committed {
					err = utils.InternalServerErrorResponse(c, "")
				}
			}()

			return next(c)
		}
	}
}

// GinPanicRecovery is PanicRecoveryMiddleware for gin routers
func GinPanicRecovery(log *logger.AppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			logPanic(log, r, c.Request.Method, c.Request.URL.Path, c.Writer.Header().Get(HeaderRequestID))
			c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{
				Success: false,
				Error:   "Internal server error",
				Code:    http.StatusInternalServerError,
			})
		}()

		c.Next()
	}
}

func logPanic(log *logger.AppLogger, r interface{}, method, path, requestID string) {
	log.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", method),
		logger.String("path", path),
		logger.String("request_id", requestID),
	)
}
