package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health status values.
const (
	StatusHealthy  = "healthy"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse represents the response for health endpoints.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadinessCheck reports whether the infrastructure behind the service is
// reachable. The context comes from the probing request.
type ReadinessCheck func(ctx context.Context) bool

// RegisterHealthEndpoints registers the liveness and readiness probes:
//   - GET /health always returns 200 while the process is up
//   - GET /ready returns 200 when check passes, 503 otherwise
func (r *Router) RegisterHealthEndpoints(check ReadinessCheck) {
	r.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: StatusHealthy})
	})

	r.echo.GET("/ready", func(c echo.Context) error {
		ctx := c.Request().Context()
		if check == nil || check(ctx) {
			return c.JSON(http.StatusOK, HealthResponse{Status: StatusReady})
		}
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: StatusNotReady})
	})
}
