package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rohitwaghmare7/veltro-console/internal/mediatoken"
)

// MediaTokenHandler serves short-lived media-session grants.
type MediaTokenHandler struct {
	tokens *mediatoken.Service
	logger *slog.Logger
}

// NewMediaTokenHandler creates a media token handler.
func NewMediaTokenHandler(log *slog.Logger, tokens *mediatoken.Service) *MediaTokenHandler {
	if log == nil {
		log = slog.Default()
	}
	return &MediaTokenHandler{
		tokens: tokens,
		logger: log.With(slog.String("handler", "mediatoken")),
	}
}

// Register mounts GET /api/media/token on the Echo instance.
func (h *MediaTokenHandler) Register(e *echo.Echo) {
	e.GET("/api/media/token", h.Token)
}

// Token mints a grant for the room and participant named in the query.
func (h *MediaTokenHandler) Token(c echo.Context) error {
	room := c.QueryParam("room")
	participant := c.QueryParam("participant")
	if room == "" || participant == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Missing room or participant name",
		})
	}

	token, err := h.tokens.Mint(room, participant)
	if err != nil {
		if errors.Is(err, mediatoken.ErrNotConfigured) {
			h.logger.Error("media credentials missing")
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "Server misconfigured",
			})
		}
		h.logger.Error("token mint failed", slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to generate token",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}
