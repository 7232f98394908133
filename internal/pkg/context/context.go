package context

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey is the key for request ID in context
	RequestIDKey ContextKey = "request_id"
	// DriverIDKey is the key for the authenticated driver in context
	DriverIDKey ContextKey = "driver_id"
)

// WithRequestID adds a request ID to the context, generating one when empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithDriverID adds the authenticated driver id to the context
func WithDriverID(ctx context.Context, driverID string) context.Context {
	return context.WithValue(ctx, DriverIDKey, driverID)
}

// GetDriverID retrieves the authenticated driver id from context
func GetDriverID(ctx context.Context) string {
	if driverID, ok := ctx.Value(DriverIDKey).(string); ok {
		return driverID
	}
	return ""
}
