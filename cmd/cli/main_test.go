package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
	"github.com/Rohitwaghmare7/veltro-console/internal/rbac"
	"github.com/Rohitwaghmare7/veltro-console/internal/session"
	"github.com/Rohitwaghmare7/veltro-console/internal/staff"
)

func newBackend(t *testing.T, handler http.Handler) (*api.Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessions := session.NewStore()
	client, err := api.NewClient(nil, srv.URL, 5*time.Second, sessions)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, sessions
}

func TestListBookings_FetchesGuardedCollection(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/staff/me":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"id": "u1", "role": "owner"},
			})
		case "/bookings":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": []map[string]any{
					{"id": "b1", "clientName": "Ada", "status": "confirmed", "date": "2026-09-01", "timeSlot": "10:00"},
				},
			})
		default:
			t.Errorf("unexpected request %s", r.URL.Path)
		}
	})
	client, sessions := newBackend(t, handler)
	sessions.Set("tok", session.User{ID: "u1"})
	guard := rbac.NewGuard(nil, sessions, staff.NewService(client))

	if err := listBookings(context.Background(), client, guard); err != nil {
		t.Fatalf("listBookings: %v", err)
	}
}

func TestListBookings_DeniedWithoutSession(t *testing.T) {
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}))
	guard := rbac.NewGuard(nil, session.NewStore(), staff.NewService(client))

	if err := listBookings(context.Background(), client, guard); err == nil {
		t.Fatal("expected error without a session")
	}
}
