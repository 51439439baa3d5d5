package integrations

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

type mockBackend struct {
	statuses   []Status
	statusErr  error
	connectErr error
	syncResult Status
}

func (m *mockBackend) Statuses(_ context.Context) ([]Status, error) {
	return m.statuses, m.statusErr
}

func (m *mockBackend) Connect(_ context.Context, provider Provider) (Status, error) {
	if m.connectErr != nil {
		return Status{}, m.connectErr
	}
	return Status{Provider: provider, State: StatePending}, nil
}

func (m *mockBackend) Disconnect(_ context.Context, provider Provider) (Status, error) {
	return Status{Provider: provider, State: StateDisconnected}, nil
}

func (m *mockBackend) Sync(_ context.Context, _ Provider) (Status, error) {
	return m.syncResult, nil
}

func newTestStore(backend backend) *Store {
	return &Store{service: backend, logger: slog.Default()}
}

func TestFetch_ReplacesStatuses(t *testing.T) {
	store := newTestStore(&mockBackend{statuses: []Status{
		{Provider: ProviderCalendar, State: StateConnected},
		{Provider: ProviderMail, State: StateDisconnected},
	}})

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got := len(store.Statuses()); got != 2 {
		t.Errorf("cached %d statuses, want 2", got)
	}
	status, ok := store.Status(ProviderCalendar)
	if !ok || status.State != StateConnected {
		t.Errorf("calendar status = %+v ok=%v", status, ok)
	}
}

func TestConnect_MirrorsReturnedStatus(t *testing.T) {
	store := newTestStore(&mockBackend{})
	store.items = []Status{{Provider: ProviderCalendar, State: StateDisconnected}}

	status, err := store.Connect(context.Background(), ProviderCalendar)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if status.State != StatePending {
		t.Errorf("state = %s, want pending", status.State)
	}
	cached, _ := store.Status(ProviderCalendar)
	if cached.State != StatePending {
		t.Errorf("cached state = %s, want pending", cached.State)
	}
	if got := len(store.Statuses()); got != 1 {
		t.Errorf("cached %d statuses, want 1", got)
	}
}

func TestConnect_FailureKeepsCacheAndSetsError(t *testing.T) {
	store := newTestStore(&mockBackend{connectErr: errors.New("boom")})
	store.items = []Status{{Provider: ProviderMail, State: StateDisconnected}}

	if _, err := store.Connect(context.Background(), ProviderMail); err == nil {
		t.Fatal("expected error")
	}
	cached, _ := store.Status(ProviderMail)
	if cached.State != StateDisconnected {
		t.Errorf("cached state = %s, want unchanged", cached.State)
	}
	if store.Flags().LastError == "" {
		t.Error("last error not recorded")
	}
}

func TestSync_AppendsUnknownProvider(t *testing.T) {
	now := time.Now()
	store := newTestStore(&mockBackend{syncResult: Status{
		Provider: ProviderPayments,
		State:    StateConnected,
		LastSync: &now,
	}})

	if _, err := store.Sync(context.Background(), ProviderPayments); err != nil {
		t.Fatalf("sync: %v", err)
	}
	cached, ok := store.Status(ProviderPayments)
	if !ok || cached.LastSync == nil {
		t.Errorf("cached status = %+v ok=%v", cached, ok)
	}
}
