package bookings

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
)

type mockBackend struct {
	mu          sync.Mutex
	listResult  []Booking
	listErr     error
	listCalls   int
	listBlock   chan struct{}
	createItem  Booking
	createErr   error
	createCalls int
	deleteErr   error
}

func (m *mockBackend) List(_ context.Context) ([]Booking, error) {
	m.mu.Lock()
	m.listCalls++
	block := m.listBlock
	m.listBlock = nil
	result, err := m.listResult, m.listErr
	m.mu.Unlock()
	if block != nil {
		<-block
	}
	return result, err
}

func (m *mockBackend) Create(_ context.Context, _ CreateRequest) (Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	return m.createItem, m.createErr
}

func (m *mockBackend) Update(_ context.Context, id string, _ UpdateRequest) (Booking, error) {
	return Booking{ID: id}, nil
}

func (m *mockBackend) UpdateStatus(_ context.Context, id string, status Status) (Booking, error) {
	return Booking{ID: id, Status: status}, nil
}

func (m *mockBackend) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

func newTestStore(backend backend) *Store {
	return &Store{service: backend, logger: slog.Default()}
}

func TestCreate_AppendsServerRecordOnce(t *testing.T) {
	mock := &mockBackend{createItem: Booking{ID: "b9", ClientName: "Dana", Status: StatusPending}}
	s := newTestStore(mock)

	item, err := s.Create(context.Background(), CreateRequest{ClientName: "Dana"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if item.ID != "b9" {
		t.Errorf("returned item = %+v", item)
	}
	cached := s.Bookings()
	if len(cached) != 1 {
		t.Fatalf("cache has %d items, want 1", len(cached))
	}
	if cached[0].ID != "b9" || cached[0].Status != StatusPending {
		t.Errorf("cached item = %+v, want server representation", cached[0])
	}
}

func TestCreate_FailureLeavesCacheUntouched(t *testing.T) {
	mock := &mockBackend{createErr: &api.APIError{Status: 422, Message: "Slot already taken"}}
	s := newTestStore(mock)
	s.items = []Booking{{ID: "b1"}}

	_, err := s.Create(context.Background(), CreateRequest{ClientName: "Dana"})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := s.Bookings(); len(got) != 1 || got[0].ID != "b1" {
		t.Errorf("cache changed on failure: %+v", got)
	}
	if flags := s.Flags(); flags.LastError != "Slot already taken" {
		t.Errorf("LastError = %q, want server message", flags.LastError)
	}
}

func TestFetch_ReplacesCollection(t *testing.T) {
	mock := &mockBackend{listResult: []Booking{{ID: "b1"}, {ID: "b2"}}}
	s := newTestStore(mock)
	s.items = []Booking{{ID: "old"}}

	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	got := s.Bookings()
	if len(got) != 2 || got[0].ID != "b1" {
		t.Errorf("cache = %+v", got)
	}
	if flags := s.Flags(); flags.Loading {
		t.Error("loading flag still set")
	}
}

func TestFetch_StaleResponseDoesNotOverwrite(t *testing.T) {
	mock := &mockBackend{listResult: []Booking{{ID: "stale"}}}
	block := make(chan struct{})
	mock.listBlock = block
	s := newTestStore(mock)

	done := make(chan struct{})
	go func() {
		_ = s.Fetch(context.Background()) // slow first fetch
		close(done)
	}()

	// Second fetch starts after the first and resolves first.
	for {
		mock.mu.Lock()
		started := mock.listCalls >= 1
		mock.mu.Unlock()
		if started {
			break
		}
	}
	mock.mu.Lock()
	mock.listResult = []Booking{{ID: "fresh"}}
	mock.mu.Unlock()
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}

	close(block)
	<-done

	got := s.Bookings()
	if len(got) != 1 || got[0].ID != "fresh" {
		t.Errorf("stale fetch overwrote fresh data: %+v", got)
	}
}

func TestDelete_RemovesFromCache(t *testing.T) {
	mock := &mockBackend{}
	s := newTestStore(mock)
	s.items = []Booking{{ID: "b1"}, {ID: "b2"}}

	if err := s.Delete(context.Background(), "b1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	got := s.Bookings()
	if len(got) != 1 || got[0].ID != "b2" {
		t.Errorf("cache = %+v", got)
	}
}
