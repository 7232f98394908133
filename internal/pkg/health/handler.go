package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fleettrack/internal/pkg/logger"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// Checker reports the health of one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckFunc adapts a ping function, such as RedisClient.Ping, to Checker
type CheckFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Response represents the health check response
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies,omitempty"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Service runs the registered dependency checks
type Service struct {
	serviceName string
	version     string

	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewService creates a new health service
func NewService(serviceName, version string) *Service {
	return &Service{
		serviceName: serviceName,
		version:     version,
		checkers:    make(map[string]Checker),
	}
}

// AddChecker registers a health checker for a dependency
func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// Check performs health checks on all registered dependencies
func (s *Service) Check(ctx context.Context) Response {
	s.mu.RLock()
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)

	response := Response{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Service:      s.serviceName,
		Version:      s.version,
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}

	for _, name := range names {
		s.mu.RLock()
		checker := s.checkers[name]
		s.mu.RUnlock()

		if err := checker.CheckHealth(ctx); err != nil {
			logger.Error("Health check failed", logger.String("dependency", name), logger.Err(err))
			response.Dependencies[name] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
			response.Status = "unhealthy"
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}

	return response
}

func (s *Service) buildInfo() BuildInfo {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	info := BuildInfo{
		Version:     s.version,
		GitCommit:   "unknown",
		ServiceName: s.serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
		ServerTime:  time.Now(),
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		info.GitCommit = gitCommit
	}
	return info
}

func (s *Service) check(ctx context.Context) (int, Response) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	response := s.Check(ctx)
	if response.Status != "healthy" {
		return http.StatusServiceUnavailable, response
	}
	return http.StatusOK, response
}

// RegisterHealthEndpoints registers /ping and /health on an echo server
func RegisterHealthEndpoints(e *echo.Echo, s *Service) {
	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.buildInfo())
	})
	e.GET("/health", func(c echo.Context) error {
		status, response := s.check(c.Request().Context())
		return c.JSON(status, response)
	})
}

// RegisterGinHealthEndpoints registers /ping and /health on a gin router
func RegisterGinHealthEndpoints(r gin.IRouter, s *Service) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.buildInfo())
	})
	r.GET("/health", func(c *gin.Context) {
		status, response := s.check(c.Request.Context())
		c.JSON(status, response)
	})
}
