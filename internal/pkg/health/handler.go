package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/logger"
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

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	serviceName string
	checkers    map[string]HealthChecker
}

// NewHealthService creates a new health service
func NewHealthService(serviceName string) *HealthService {
	return &HealthService{
		serviceName: serviceName,
		checkers:    make(map[string]HealthChecker),
	}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// CheckAllHealth performs health checks on all registered dependencies
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Service:      h.serviceName,
		Dependencies: make(map[string]DependencyInfo),
	}

	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checkers[name].CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))

			response.Dependencies[name] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
			response.Status = "unhealthy"
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}

	return response
}

func (h *HealthService) ready(ctx context.Context) (int, HealthResponse) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	response := h.CheckAllHealth(ctx)
	if response.Status == "unhealthy" {
		return http.StatusServiceUnavailable, response
	}
	return http.StatusOK, response
}

func (h *HealthService) buildInfo() BuildInfo {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	info := BuildInfo{
		Version:     "development",
		GitCommit:   "unknown",
		ServiceName: h.serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
		ServerTime:  time.Now(),
	}
	if version := os.Getenv("VERSION"); version != "" {
		info.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		info.GitCommit = gitCommit
	}
	return info
}

// RegisterHealthEndpoints registers /ping, /health and /ready on an echo router
func RegisterHealthEndpoints(e *echo.Echo, h *HealthService) {
	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, h.buildInfo())
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		status, response := h.ready(c.Request().Context())
		return c.JSON(status, response)
	})
}

// RegisterGinHealthEndpoints registers the same endpoints on a gin router
func RegisterGinHealthEndpoints(r gin.IRouter, h *HealthService) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, h.buildInfo())
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	r.GET("/ready", func(c *gin.Context) {
		status, response := h.ready(c.Request.Context())
		c.JSON(status, response)
	})
}
