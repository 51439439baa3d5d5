// Package boot provides runtime configuration and dependency wiring for the console.
package boot

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Rohitwaghmare7/veltro-console/internal/config"
)

// RuntimeConfig holds parsed runtime settings (backend URL, media token signing, server address).
// Values may be overridden by environment variables (e.g. HTTP_ADDR, VELTRO_API_URL).
type RuntimeConfig struct {
	ServerAddr     string
	APIBaseURL     string
	APITimeout     time.Duration
	RealtimeURL    string
	MediaAPIKey    string
	MediaAPISecret string
	MediaTokenTTL  time.Duration
	SpeechGuard    time.Duration
	StatePath      string
}

// ProvideRuntimeConfig builds RuntimeConfig from the given config and applies env overrides.
func ProvideRuntimeConfig(cfg config.Config) (*RuntimeConfig, error) {
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return nil, errors.New("backend api base url is required")
	}

	tokenTTL, err := time.ParseDuration(cfg.Media.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid media token ttl: %w", err)
	}

	ret := &RuntimeConfig{
		ServerAddr:     cfg.Server.Addr,
		APIBaseURL:     strings.TrimRight(cfg.API.BaseURL, "/"),
		APITimeout:     time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		RealtimeURL:    cfg.Realtime.URL,
		MediaAPIKey:    cfg.Media.APIKey,
		MediaAPISecret: cfg.Media.APISecret,
		MediaTokenTTL:  tokenTTL,
		SpeechGuard:    time.Duration(cfg.Voice.SpeechGuardMs) * time.Millisecond,
		StatePath:      cfg.State.Path,
	}

	if value := os.Getenv("HTTP_ADDR"); value != "" {
		ret.ServerAddr = value
	}
	if value := os.Getenv("VELTRO_API_URL"); value != "" {
		ret.APIBaseURL = strings.TrimRight(value, "/")
	}
	if value := os.Getenv("VELTRO_REALTIME_URL"); value != "" {
		ret.RealtimeURL = value
	}
	if value := os.Getenv("LIVEKIT_API_KEY"); value != "" {
		ret.MediaAPIKey = value
	}
	if value := os.Getenv("LIVEKIT_API_SECRET"); value != "" {
		ret.MediaAPISecret = value
	}
	return ret, nil
}
