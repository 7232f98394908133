package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	appctx "github.com/piresc/fleettrack/internal/pkg/context"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/utils"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
	// RequestIDHeader carries the caller's request id to downstream services
	RequestIDHeader = "X-Request-ID"
)

// Config configures a service client
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	ServiceName string
	APIKey      string
	BearerToken string
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP error: %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is a StatusError with the given code
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

// Client is a JSON client for the {success, data} envelope used by every service
type Client struct {
	baseURL     string
	serviceName string
	apiKey      string
	bearerToken string
	httpClient  *nethttp.Client
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		serviceName: config.ServiceName,
		apiKey:      config.APIKey,
		bearerToken: config.BearerToken,
		httpClient:  &nethttp.Client{Timeout: timeout},
	}
}

// GetJSON performs a GET request and decodes the envelope data into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.do(ctx, nethttp.MethodGet, endpoint, nil, result)
}

// PostJSON performs a POST request and decodes the envelope data into result
func (c *Client) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	return c.do(ctx, nethttp.MethodPost, endpoint, body, result)
}

// PutJSON performs a PUT request and decodes the envelope data into result
func (c *Client) PutJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	return c.do(ctx, nethttp.MethodPut, endpoint, body, result)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}, result interface{}) error {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}
	if requestID := appctx.GetRequestID(ctx); requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return fmt.Errorf("request to %s failed: %w", c.serviceName, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var envelope utils.ErrorResponse
		_ = json.Unmarshal(respBody, &envelope)
		return &StatusError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	return utils.ParseJSONResponse(respBody, result)
}
