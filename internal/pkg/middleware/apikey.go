package middleware

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fleettrack/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	APIKeyHeader = "X-API-Key"
)

// APIKeyValidator checks service keys against configured bcrypt hashes.
// bcrypt is slow on purpose, so verified keys are remembered by their sha256 digest.
type APIKeyValidator struct {
	hashes [][]byte

	mu       sync.RWMutex
	verified map[[sha256.Size]byte]bool
}

// NewAPIKeyValidator creates a validator for the given bcrypt hashes
func NewAPIKeyValidator(hashes []string) *APIKeyValidator {
	v := &APIKeyValidator{verified: make(map[[sha256.Size]byte]bool)}
	for _, h := range hashes {
		if h != "" {
			v.hashes = append(v.hashes, []byte(h))
		}
	}
	return v
}

// HashAPIKey returns the bcrypt hash to put in configuration for a plaintext key
func HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash api key: %w", err)
	}
	return string(hash), nil
}

// Valid reports whether key matches one of the configured hashes
func (v *APIKeyValidator) Valid(key string) bool {
	if key == "" {
		return false
	}

	digest := sha256.Sum256([]byte(key))
	v.mu.RLock()
	seen := v.verified[digest]
	v.mu.RUnlock()
	if seen {
		return true
	}

	for _, h := range v.hashes {
		if bcrypt.CompareHashAndPassword(h, []byte(key)) == nil {
			// only accepted keys are remembered, so the cache is bounded by the configured keys
			v.mu.Lock()
			v.verified[digest] = true
			v.mu.Unlock()
			return true
		}
	}
	return false
}

func (v *APIKeyValidator) cached() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.verified)
}

// ValidateAPIKey middleware validates the API key for service-to-service communication
func ValidateAPIKey(validator *APIKeyValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}
			if !validator.Valid(apiKey) {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}
			return next(c)
		}
	}
}
