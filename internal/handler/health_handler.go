package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"promptcraft/backend/internal/config"
	"promptcraft/backend/internal/logger"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
}

// Health reports liveness and database reachability.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.Warn("health check failed", "module", "handler", "action", "fetch", "resource", "db", "result", "failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Version: config.AppVersion})
	}
	return c.JSON(http.StatusOK, healthResponse{Status: "ok", Version: config.AppVersion})
}
