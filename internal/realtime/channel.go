// Package realtime maintains the socket connection delivering inbox and
// conversation events, and fans them out to in-process subscribers.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/url"
	"sync"

	"github.com/coder/websocket"
)

// ErrAlreadyConnected is returned when Connect is called on a live channel.
var ErrAlreadyConnected = errors.New("realtime channel already connected")

// Channel is the single shared socket handle. It is lazily connected on
// first use and explicitly torn down on logout; only one connection is
// permitted at a time.
type Channel struct {
	mu        sync.Mutex
	conn      *websocket.Conn
	cancel    context.CancelFunc
	hub       *Hub
	endpoint  string
	connected bool
	logger    *slog.Logger
}

// NewChannel creates a disconnected channel for the given socket endpoint.
func NewChannel(log *slog.Logger, endpoint string, hub *Hub) *Channel {
	if log == nil {
		log = slog.Default()
	}
	if hub == nil {
		hub = NewHub()
	}
	return &Channel{
		hub:      hub,
		endpoint: endpoint,
		logger:   log.With(slog.String("component", "realtime")),
	}
}

// Hub returns the event hub for subscriptions.
func (c *Channel) Hub() *Hub {
	return c.hub
}

// Connected reports whether the socket is currently up.
func (c *Channel) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Connect dials the socket with the auth token in the handshake and
// starts the read loop. A second Connect while live returns
// ErrAlreadyConnected.
func (c *Channel) Connect(ctx context.Context, token string) error {
	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	c.mu.Unlock()

	endpoint, err := handshakeURL(c.endpoint, token)
	if err != nil {
		return err
	}

	conn, _, err := websocket.Dial(ctx, endpoint, nil)
	if err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		cancel()
		_ = conn.Close(websocket.StatusNormalClosure, "duplicate connection")
		return ErrAlreadyConnected
	}
	c.conn = conn
	c.cancel = cancel
	c.connected = true
	c.mu.Unlock()

	go c.readLoop(loopCtx, conn)
	c.logger.Info("channel connected")
	return nil
}

// Disconnect tears the connection down (logout path). Idempotent.
func (c *Channel) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	cancel := c.cancel
	c.conn = nil
	c.cancel = nil
	c.connected = false
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "logout")
		c.logger.Info("channel disconnected")
	}
}

func (c *Channel) readLoop(ctx context.Context, conn *websocket.Conn) {
	defer c.Disconnect()
	for {
		_, raw, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() == nil {
				c.logger.Warn("channel read failed", slog.Any("error", err))
			}
			return
		}
		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			c.logger.Warn("unparseable socket frame", slog.Any("error", err))
			continue
		}
		if event.Name == "" {
			continue
		}
		c.hub.Publish(event)
	}
}

func handshakeURL(endpoint, token string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
