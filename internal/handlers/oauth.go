package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rohitwaghmare7/veltro-console/internal/oauthflow"
)

// OAuthHandler serves the OAuth redirect landings for connectable providers.
type OAuthHandler struct {
	flow   *oauthflow.Service
	logger *slog.Logger
}

// NewOAuthHandler creates an OAuth callback handler.
func NewOAuthHandler(log *slog.Logger, flow *oauthflow.Service) *OAuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &OAuthHandler{
		flow:   flow,
		logger: log.With(slog.String("handler", "oauth")),
	}
}

// Register mounts the provider callback routes on the Echo instance.
func (h *OAuthHandler) Register(e *echo.Echo) {
	e.GET("/oauth/calendar/callback", h.callback(oauthflow.ProviderCalendar))
	e.GET("/oauth/mail/callback", h.callback(oauthflow.ProviderMail))
}

func (h *OAuthHandler) callback(provider oauthflow.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		dest := h.flow.HandleCallback(
			c.Request().Context(),
			provider,
			c.QueryParam("code"),
			c.QueryParam("state"),
			c.QueryParam("error"),
		)
		return c.Redirect(http.StatusFound, dest)
	}
}
