// Package realtime streams order events to connected staff dashboards over websockets.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	sendBufferSize = 32
)

// Hub fans order events out to every connected client. A client that falls
// behind by more than its buffer is disconnected rather than blocking others.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Params holds dependencies for the hub, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewHub creates the hub and closes every connection on shutdown.
func NewHub(params Params) *Hub {
	hub := newHub(params.Config.HTTP.AllowedOrigins, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()

			return nil
		},
	})

	return hub
}

// NewOrderFeed exposes the hub as the domain feed port.
func NewOrderFeed(hub *Hub) service.OrderFeed {
	return hub
}

func newHub(allowedOrigins []string, logger *slog.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger:  logger,
		clients: make(map[*client]struct{}),
	}
}

// originChecker accepts same-origin requests and the configured CORS origins.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		return slices.Contains(allowed, "*") || slices.Contains(allowed, origin) ||
			origin == "http://"+r.Host || origin == "https://"+r.Host
	}
}

// ServeHTTP upgrades the request and streams events until the client leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))

		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBufferSize)}
	if !h.register(c) {
		conn.Close()

		return
	}

	go h.writePump(c)
	h.readPump(c)
}

// Broadcast implements service.OrderFeed.
func (h *Hub) Broadcast(event *service.OrderEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal order event", slog.Any("error", errors.WithStack(err)))

		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			h.removeLocked(c)
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}

	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// readPump only watches for pongs and the close frame; clients never send data.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
