// Package rbac gates access to protected screens based on the fetched
// staff profile. Checks are point-in-time: permission changes elsewhere
// are not observed until the caller re-runs the check.
package rbac

import (
	"context"
	"log/slog"
	"time"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
	"github.com/Rohitwaghmare7/veltro-console/internal/staff"
)

// Outcome classifies a guard decision.
type Outcome int

const (
	// OutcomeAuthorized means the protected content may render.
	OutcomeAuthorized Outcome = iota
	// OutcomeRedirectLogin means no session marker exists; go to login now.
	OutcomeRedirectLogin
	// OutcomeError means the profile fetch failed; show the error and
	// redirect to the safe default after the delay.
	OutcomeError
	// OutcomeDenied means the profile lacks every requested permission.
	OutcomeDenied
)

// Default redirect targets and delay.
const (
	DefaultLoginPath     = "/login"
	DefaultFallbackPath  = "/dashboard"
	DefaultRedirectDelay = 3 * time.Second
)

// Decision is the result of a guard check.
type Decision struct {
	Outcome       Outcome
	Message       string
	RedirectTo    string
	RedirectDelay time.Duration
}

// Authorized reports whether the content may render.
func (d Decision) Authorized() bool { return d.Outcome == OutcomeAuthorized }

type sessionSource interface {
	Active() bool
}

type profileSource interface {
	Me(ctx context.Context) (staff.Profile, error)
}

// Guard performs the session check and permission evaluation.
type Guard struct {
	session       sessionSource
	profiles      profileSource
	loginPath     string
	fallbackPath  string
	redirectDelay time.Duration
	logger        *slog.Logger
}

// NewGuard creates a guard over the given session and profile sources.
func NewGuard(log *slog.Logger, session sessionSource, profiles profileSource) *Guard {
	if log == nil {
		log = slog.Default()
	}
	return &Guard{
		session:       session,
		profiles:      profiles,
		loginPath:     DefaultLoginPath,
		fallbackPath:  DefaultFallbackPath,
		redirectDelay: DefaultRedirectDelay,
		logger:        log.With(slog.String("component", "rbac")),
	}
}

// Check evaluates access for the requested permission set. Authorization
// requires the profile to hold at least one of the requested permissions
// (logical OR); owners are always authorized, even for an empty set.
func (g *Guard) Check(ctx context.Context, required []staff.Permission) Decision {
	if g.session == nil || !g.session.Active() {
		return Decision{
			Outcome:    OutcomeRedirectLogin,
			RedirectTo: g.loginPath,
		}
	}

	profile, err := g.profiles.Me(ctx)
	if err != nil {
		g.logger.Warn("profile fetch failed", slog.Any("error", err))
		return Decision{
			Outcome:       OutcomeError,
			Message:       api.DisplayMessage(err, "Failed to verify access"),
			RedirectTo:    g.fallbackPath,
			RedirectDelay: g.redirectDelay,
		}
	}

	if profile.Role == staff.RoleOwner {
		return Decision{Outcome: OutcomeAuthorized}
	}

	if profile.Permissions.HasAny(required) {
		return Decision{Outcome: OutcomeAuthorized}
	}

	return Decision{
		Outcome:       OutcomeDenied,
		Message:       "You don't have permission to view this page",
		RedirectTo:    g.fallbackPath,
		RedirectDelay: g.redirectDelay,
	}
}
