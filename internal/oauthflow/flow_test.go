package oauthflow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
	"github.com/Rohitwaghmare7/veltro-console/internal/config"
)

func testService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := api.NewClient(nil, srv.URL, 5*time.Second, nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.OAuthConfig{
		ReturnPath: "/dashboard/integrations",
		Calendar: config.OAuthProviderConfig{
			ClientID: "cal-client",
			AuthURL:  "https://provider.example/auth",
			TokenURL: "https://provider.example/token",
		},
	}
	return NewService(nil, cfg, client)
}

func TestReturnDestination_Defensive(t *testing.T) {
	s := testService(t, func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		state string
		want  string
	}{
		{"", "/dashboard/integrations"},
		{"garbage", "/dashboard/integrations"},
		{`{"returnTo":""}`, "/dashboard/integrations"},
		{`{"returnTo":"https://evil.example/x"}`, "/dashboard/integrations"},
		{`{"returnTo":"//evil.example"}`, "/dashboard/integrations"},
		{`{"returnTo":"/dashboard/bookings"}`, "/dashboard/bookings"},
	}
	for _, tt := range tests {
		if got := s.ReturnDestination(tt.state); got != tt.want {
			t.Errorf("ReturnDestination(%q) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestHandleCallback_ForwardsCode(t *testing.T) {
	var gotPath string
	s := testService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	dest := s.HandleCallback(context.Background(), ProviderCalendar, "auth-code", `{"returnTo":"/dashboard/bookings"}`, "")
	if dest != "/dashboard/bookings?connected=1" {
		t.Errorf("dest = %q", dest)
	}
	if gotPath != "/integrations/calendar/oauth/exchange" {
		t.Errorf("exchange path = %q", gotPath)
	}
}

func TestHandleCallback_ProviderError(t *testing.T) {
	called := false
	s := testService(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	dest := s.HandleCallback(context.Background(), ProviderCalendar, "code", "", "access_denied")
	if dest != "/dashboard/integrations?connected=0" {
		t.Errorf("dest = %q", dest)
	}
	if called {
		t.Error("backend called despite provider error")
	}
}

func TestHandleCallback_MissingCode(t *testing.T) {
	s := testService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called")
	})
	dest := s.HandleCallback(context.Background(), ProviderMail, "", "", "")
	if dest != "/dashboard/integrations?connected=0" {
		t.Errorf("dest = %q", dest)
	}
}

func TestHandleCallback_ExchangeFailure(t *testing.T) {
	s := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"success":false,"message":"provider unavailable"}`))
	})
	dest := s.HandleCallback(context.Background(), ProviderCalendar, "code", "", "")
	if dest != "/dashboard/integrations?connected=0" {
		t.Errorf("dest = %q", dest)
	}
}

func TestAuthURL(t *testing.T) {
	s := testService(t, func(w http.ResponseWriter, r *http.Request) {})

	u, err := s.AuthURL(ProviderCalendar, "st")
	if err != nil {
		t.Fatalf("AuthURL: %v", err)
	}
	if !strings.HasPrefix(u, "https://provider.example/auth") {
		t.Errorf("url = %q", u)
	}

	if _, err := s.AuthURL(ProviderMail, "st"); err == nil {
		t.Error("expected error for unconfigured provider")
	}
}
