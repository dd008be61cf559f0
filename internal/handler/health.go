package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/registry/internal/middleware"
	"github.com/deppfellow/registry/internal/server"
	"github.com/labstack/echo/v4"
)

const defaultHealthCheckTimeout = 5 * time.Second

var errDatabaseNotConfigured = errors.New("database not configured")

// pinger is the part of the database the health check needs.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	db pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
	}
	if s.DB != nil {
		h.db = s.DB
	}
	return h
}

func (h *HealthHandler) timeout() time.Duration {
	if obs := h.server.Config.Observability; obs != nil && obs.HealthChecks.Timeout > 0 {
		return obs.HealthChecks.Timeout
	}
	return defaultHealthCheckTimeout
}

func (h *HealthHandler) recordFailure(checkType string, fields map[string]interface{}) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	fields["check_type"] = checkType
	fields["operation"] = "health_check"
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", fields)
}

// CheckHealth pings the database and reports 200 when it answers within
// the configured timeout, 503 otherwise. With health checks disabled it
// only reports liveness.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]interface{}{}
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if obs := h.server.Config.Observability; obs != nil && !obs.HealthChecks.IsEnabled() {
		return c.JSON(http.StatusOK, response)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout())
	defer cancel()

	dbStart := time.Now()
	err := errDatabaseNotConfigured
	if h.db != nil {
		err = h.db.Ping(ctx)
	}

	if err != nil {
		checks["database"] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(dbStart).String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")

		h.recordFailure("database", map[string]interface{}{
			"error_type":       "database_unhealthy",
			"response_time_ms": time.Since(dbStart).Milliseconds(),
			"error_message":    err.Error(),
		})

		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	checks["database"] = map[string]interface{}{
		"status":        "healthy",
		"response_time": time.Since(dbStart).String(),
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
