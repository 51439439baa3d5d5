package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Event names delivered by the backend socket.
const (
	EventNewMessage          = "new_message"
	EventConversationUpdated = "conversation_updated"
)

// Event is one decoded socket frame.
type Event struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

// Hub fans socket events out to subscribers by event name. Delivery is
// fire-and-forget: slow receivers are silently dropped, ordering is
// whatever the transport delivered.
type Hub struct {
	mu      sync.RWMutex
	streams map[string]map[string]chan Event
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		streams: map[string]map[string]chan Event{},
	}
}

// Subscribe registers a stream for the given event name and returns a
// subscriber ID, a read-only channel, and a cancel function.
func (h *Hub) Subscribe(eventName string) (string, <-chan Event, func()) {
	subID := uuid.NewString()
	ch := make(chan Event, 32)

	h.mu.Lock()
	subs, ok := h.streams[eventName]
	if !ok {
		subs = map[string]chan Event{}
		h.streams[eventName] = subs
	}
	subs[subID] = ch
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		subs := h.streams[eventName]
		if subs != nil {
			if current, ok := subs[subID]; ok {
				delete(subs, subID)
				close(current)
			}
			if len(subs) == 0 {
				delete(h.streams, eventName)
			}
		}
		h.mu.Unlock()
	}

	return subID, ch, cancel
}

// Publish delivers an event to all subscribers of its name.
// Slow receivers are silently dropped.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.streams[event.Name] {
		select {
		case ch <- event:
		default:
			// Drop if receiver is slow.
		}
	}
}
