package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves /healthz for liveness.
type HealthHandler struct {
	logger *slog.Logger
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(log *slog.Logger) *HealthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &HealthHandler{logger: log.With(slog.String("handler", "health"))}
}

// Register mounts GET and HEAD /healthz on the Echo instance.
func (h *HealthHandler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	e.HEAD("/healthz", h.HealthHead)
}

// Health returns 200 JSON {"status":"ok"}.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthHead returns 200 No Content for health checks.
func (h *HealthHandler) HealthHead(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
