// Package oauthflow handles the third-party authorization redirect
// landings: it builds provider consent URLs and forwards returned
// authorization codes to the backend for token exchange.
package oauthflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/oauth2"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
	"github.com/Rohitwaghmare7/veltro-console/internal/config"
)

// Provider names a connectable third party.
type Provider string

const (
	ProviderCalendar Provider = "calendar"
	ProviderMail     Provider = "mail"
)

// stateHint is the optional JSON payload carried in the OAuth state
// parameter. Parsed defensively: any failure falls back to the default
// return destination.
type stateHint struct {
	ReturnTo string `json:"returnTo"`
}

// Service drives the two redirect-landing flows.
type Service struct {
	providers  map[Provider]*oauth2.Config
	client     *api.Client
	returnPath string
	logger     *slog.Logger
}

// NewService creates the flow service from the OAuth config section.
func NewService(log *slog.Logger, cfg config.OAuthConfig, client *api.Client) *Service {
	if log == nil {
		log = slog.Default()
	}
	returnPath := cfg.ReturnPath
	if returnPath == "" {
		returnPath = config.DefaultOAuthReturnPath
	}
	return &Service{
		providers: map[Provider]*oauth2.Config{
			ProviderCalendar: providerConfig(cfg.Calendar),
			ProviderMail:     providerConfig(cfg.Mail),
		},
		client:     client,
		returnPath: returnPath,
		logger:     log.With(slog.String("service", "oauthflow")),
	}
}

func providerConfig(cfg config.OAuthProviderConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       cfg.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.AuthURL,
			TokenURL: cfg.TokenURL,
		},
	}
}

// AuthURL returns the provider consent URL carrying the given state.
func (s *Service) AuthURL(provider Provider, state string) (string, error) {
	cfg, ok := s.providers[provider]
	if !ok || cfg.ClientID == "" {
		return "", fmt.Errorf("provider %s not configured", provider)
	}
	return cfg.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// HandleCallback processes one redirect landing and returns the browser
// destination. Provider denials and missing codes land on the default
// destination flagged unconnected; exchange failures likewise. The
// authorization code itself is forwarded to the backend, which owns the
// token exchange and storage.
func (s *Service) HandleCallback(ctx context.Context, provider Provider, code, state, errParam string) string {
	dest := s.ReturnDestination(state)

	if strings.TrimSpace(errParam) != "" {
		s.logger.Warn("provider returned error",
			slog.String("provider", string(provider)),
			slog.String("error", errParam),
		)
		return dest + "?connected=0"
	}
	if strings.TrimSpace(code) == "" {
		return dest + "?connected=0"
	}

	body := map[string]string{"code": code}
	path := fmt.Sprintf("/integrations/%s/oauth/exchange", provider)
	if err := s.client.Post(ctx, path, body, nil); err != nil {
		s.logger.Warn("code exchange failed",
			slog.String("provider", string(provider)),
			slog.Any("error", err),
		)
		return dest + "?connected=0"
	}
	return dest + "?connected=1"
}

// ReturnDestination resolves the state hint to a local path. Parse
// failures and non-local destinations yield the fixed default.
func (s *Service) ReturnDestination(state string) string {
	if strings.TrimSpace(state) == "" {
		return s.returnPath
	}
	var hint stateHint
	if err := json.Unmarshal([]byte(state), &hint); err != nil {
		return s.returnPath
	}
	dest := strings.TrimSpace(hint.ReturnTo)
	if dest == "" || !strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") {
		return s.returnPath
	}
	return dest
}
