package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext()

	err := SuccessResponse(c, http.StatusOK, "Live drivers", map[string]interface{}{"count": float64(2)})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Live drivers", response.Message)
	assert.Equal(t, map[string]interface{}{"count": float64(2)}, response.Data)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		send     func(c echo.Context) error
		status   int
		expected string
	}{
		{
			name:     "Bad request",
			send:     func(c echo.Context) error { return BadRequestResponse(c, "latitude must be between -90 and 90") },
			status:   http.StatusBadRequest,
			expected: "latitude must be between -90 and 90",
		},
		{
			name:     "Unauthorized default message",
			send:     func(c echo.Context) error { return UnauthorizedResponse(c, "") },
			status:   http.StatusUnauthorized,
			expected: "Unauthorized",
		},
		{
			name:     "Forbidden default message",
			send:     func(c echo.Context) error { return ForbiddenResponse(c, "") },
			status:   http.StatusForbidden,
			expected: "Forbidden",
		},
		{
			name:     "Not found default message",
			send:     func(c echo.Context) error { return NotFoundResponse(c, "") },
			status:   http.StatusNotFound,
			expected: "Resource not found",
		},
		{
			name:     "Internal server error default message",
			send:     func(c echo.Context) error { return InternalServerErrorResponse(c, "") },
			status:   http.StatusInternalServerError,
			expected: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, tt.send(c))
			assert.Equal(t, tt.status, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.expected, response.Error)
			assert.Equal(t, tt.status, response.Code)
		})
	}
}

func TestParseJSONResponse(t *testing.T) {
	type accepted struct {
		Accepted bool `json:"accepted"`
	}

	tests := []struct {
		name        string
		body        string
		expectError bool
		expected    accepted
	}{
		{
			name:     "Success with data",
			body:     `{"success":true,"message":"ok","data":{"accepted":true}}`,
			expected: accepted{Accepted: true},
		},
		{
			name:     "Success without data",
			body:     `{"success":true,"message":"ok"}`,
			expected: accepted{},
		},
		{
			name:        "Error envelope",
			body:        `{"success":false,"error":"driver mismatch","code":403}`,
			expectError: true,
		},
		{
			name:        "Invalid JSON",
			body:        `{invalid json}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out accepted
			err := ParseJSONResponse([]byte(tt.body), &out)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}
