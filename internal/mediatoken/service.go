// Package mediatoken mints short-lived signed grants for realtime
// audio/video sessions, scoped to one room and participant.
package mediatoken

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the grant validity window.
const DefaultTTL = 10 * time.Minute

// ErrNotConfigured is returned when the signing credentials are absent.
var ErrNotConfigured = errors.New("media token credentials not configured")

// VideoGrant is the room-scoped permission claim.
type VideoGrant struct {
	Room     string `json:"room"`
	RoomJoin bool   `json:"roomJoin"`
}

// Claims is the signed token payload.
type Claims struct {
	jwt.RegisteredClaims
	Identity string     `json:"identity"`
	Video    VideoGrant `json:"video"`
}

// Service signs media-session grants with the server-held API credentials.
type Service struct {
	apiKey    string
	apiSecret string
	ttl       time.Duration
	logger    *slog.Logger
}

// NewService creates a token service. TTL defaults to ten minutes.
func NewService(log *slog.Logger, apiKey, apiSecret string, ttl time.Duration) *Service {
	if log == nil {
		log = slog.Default()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		apiKey:    strings.TrimSpace(apiKey),
		apiSecret: strings.TrimSpace(apiSecret),
		ttl:       ttl,
		logger:    log.With(slog.String("service", "mediatoken")),
	}
}

// Configured reports whether signing credentials are present.
func (s *Service) Configured() bool {
	return s.apiKey != "" && s.apiSecret != ""
}

// Mint issues a grant for the named room and participant.
func (s *Service) Mint(room, participant string) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(room) == "" || strings.TrimSpace(participant) == "" {
		return "", errors.New("room and participant are required")
	}

	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.apiKey,
			Subject:   participant,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Identity: participant,
		Video: VideoGrant{
			Room:     room,
			RoomJoin: true,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.apiSecret))
	if err != nil {
		return "", err
	}
	s.logger.Info("media token issued",
		slog.String("room", room),
		slog.String("participant", participant),
	)
	return signed, nil
}
