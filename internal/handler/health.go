package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/acervo-api/internal/database"
	"github.com/deppfellow/acervo-api/internal/middleware"
	"github.com/deppfellow/acervo-api/internal/server"
	"github.com/labstack/echo/v4"
)

// DatabaseOK is the statusBD value of a reachable database.
const DatabaseOK = "ok"

// RootResponse is the body of GET /.
type RootResponse struct {
	Description    string `json:"descricao"`
	Author         string `json:"autor"`
	DatabaseStatus string `json:"statusBD"`
}

// HealthHandler serves the two health endpoints.
//
// GET / opens a fresh connection on every call and always answers 200,
// reporting the driver error text when the database is unreachable.
// GET /status pings the shared pool and answers 503 when it is unhealthy.
type HealthHandler struct {
	Handler

	// probe and ping are swapped out in tests.
	probe func(ctx context.Context) error
	ping  func(ctx context.Context) error
}

// NewHealthHandler returns a handler that probes s.Config.Database.URL for
// GET / and pings s.DB for GET /status.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		probe: func(ctx context.Context) error {
			return database.Probe(ctx, s.Config.Database.URL)
		},
		ping: s.DB.Ping,
	}
}

func (h *HealthHandler) recordFailure(checkType string, elapsed time.Duration, err error) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	app.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":       checkType,
		"operation":        "health_check",
		"error_type":       checkType + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}

// Root reports the API description and whether the database answers SELECT 1.
func (h *HealthHandler) Root(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "root_health").
		Logger()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	status := DatabaseOK
	start := time.Now()
	if err := h.probe(ctx); err != nil {
		status = err.Error()

		logger.Warn().
			Err(err).
			Dur("response_time", time.Since(start)).
			Msg("database probe failed")

		h.recordFailure("database_probe", time.Since(start), err)
	}

	return c.JSON(http.StatusOK, RootResponse{
		Description:    h.server.Config.API.Description,
		Author:         h.server.Config.API.Author,
		DatabaseStatus: status,
	})
}

// CheckResult is the outcome of a single dependency check.
type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

// CheckHealth runs the configured dependency checks against the shared
// pool. It answers 200 when all pass and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := StatusResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]CheckResult{},
	}

	if cfg.HasCheck("database") {
		ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.HealthChecks.Timeout)
		defer cancel()

		dbStart := time.Now()
		if err := h.ping(ctx); err != nil {
			response.Status = "unhealthy"
			response.Checks["database"] = CheckResult{
				Status:       "unhealthy",
				ResponseTime: time.Since(dbStart).String(),
				Error:        err.Error(),
			}

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(dbStart)).
				Msg("database health check failed")

			h.recordFailure("database", time.Since(dbStart), err)
		} else {
			response.Checks["database"] = CheckResult{
				Status:       "healthy",
				ResponseTime: time.Since(dbStart).String(),
			}
		}
	}

	if response.Status != "healthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
