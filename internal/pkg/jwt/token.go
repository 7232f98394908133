package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

// RoleDriver is the role carried by tokens issued to driver devices
const RoleDriver = "driver"

// ErrInvalidToken is returned for tokens that fail signature, expiry or claim checks
var ErrInvalidToken = errors.New("invalid token")

// Claims are the verified claims of a driver token
type Claims struct {
	DriverID  string
	Role      string
	ExpiresAt int64
}

// GenerateToken signs an HS256 token whose subject is the driver id
func GenerateToken(driverID, role string, cfg models.JWTConfig) (string, int64, error) {
	if cfg.Secret == "" {
		return "", 0, fmt.Errorf("jwt secret is not configured")
	}

	expiresAt := time.Now().Add(cfg.Expiration).Unix()
	claims := jwt.MapClaims{
		"sub":  driverID,
		"role": role,
		"exp":  expiresAt,
		"iat":  time.Now().Unix(),
		"iss":  cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies signature and expiry and returns the driver claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	role, _ := mapClaims["role"].(string)
	exp, _ := mapClaims["exp"].(float64)

	return &Claims{DriverID: sub, Role: role, ExpiresAt: int64(exp)}, nil
}
