// Package config loads and exposes application configuration (TOML).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Default configuration values used when a field is missing in TOML.
const (
	DefaultConfigPath      = "config.toml"
	DefaultHTTPAddr        = ":8090"
	DefaultAPIBaseURL      = "http://127.0.0.1:5000/api"
	DefaultAPITimeout      = 15
	DefaultRealtimeURL     = "ws://127.0.0.1:5000/socket"
	DefaultMediaTokenTTL   = "10m"
	DefaultOAuthReturnPath = "/dashboard/integrations"
	DefaultStatePath       = "state.json"
	DefaultSpeechGuardMs   = 350
)

// Config is the root application configuration loaded from TOML.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Server   ServerConfig   `toml:"server"`
	API      APIConfig      `toml:"api"`
	Realtime RealtimeConfig `toml:"realtime"`
	Media    MediaConfig    `toml:"media"`
	OAuth    OAuthConfig    `toml:"oauth"`
	Voice    VoiceConfig    `toml:"voice"`
	State    StateConfig    `toml:"state"`
}

// LogConfig holds logging level and format (e.g. level=info, format=text).
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ServerConfig holds the gateway HTTP listen address.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// APIConfig holds the Veltro backend base URL and request timeout.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// RealtimeConfig holds the socket endpoint for the inbox event channel.
type RealtimeConfig struct {
	URL string `toml:"url"`
}

// MediaConfig holds the media-session token signing credentials and TTL.
type MediaConfig struct {
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`
	TokenTTL  string `toml:"token_ttl"`
}

// OAuthConfig holds per-provider client settings for the redirect landings.
type OAuthConfig struct {
	ReturnPath string              `toml:"return_path"`
	Calendar   OAuthProviderConfig `toml:"calendar"`
	Mail       OAuthProviderConfig `toml:"mail"`
}

// OAuthProviderConfig holds one provider's client ID, secret, and endpoints.
type OAuthProviderConfig struct {
	ClientID     string   `toml:"client_id"`
	ClientSecret string   `toml:"client_secret"`
	AuthURL      string   `toml:"auth_url"`
	TokenURL     string   `toml:"token_url"`
	RedirectURL  string   `toml:"redirect_url"`
	Scopes       []string `toml:"scopes"`
}

// VoiceConfig holds voice onboarding tunables.
type VoiceConfig struct {
	// SpeechGuardMs is the pause between synthesis end and capture start,
	// keeping the synthesis tail out of the microphone input.
	SpeechGuardMs int `toml:"speech_guard_ms"`
}

// StateConfig holds the local persisted state file location.
type StateConfig struct {
	Path string `toml:"path"`
}

// Load reads and parses the TOML config file at path and applies default values for missing fields.
func Load(path string) (Config, error) {
	cfg := Config{}
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultHTTPAddr
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultAPIBaseURL
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = DefaultAPITimeout
	}
	if cfg.Realtime.URL == "" {
		cfg.Realtime.URL = DefaultRealtimeURL
	}
	if cfg.Media.TokenTTL == "" {
		cfg.Media.TokenTTL = DefaultMediaTokenTTL
	}
	if cfg.OAuth.ReturnPath == "" {
		cfg.OAuth.ReturnPath = DefaultOAuthReturnPath
	}
	if cfg.Voice.SpeechGuardMs <= 0 {
		cfg.Voice.SpeechGuardMs = DefaultSpeechGuardMs
	}
	if cfg.State.Path == "" {
		cfg.State.Path = DefaultStatePath
	}
}
