package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/davidgomes/haxball-clone/internal/metrics"
	"github.com/davidgomes/haxball-clone/internal/middleware"
)

// DefaultMaxConnsPerIP caps websocket connections per client address
const DefaultMaxConnsPerIP = 10

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The engine is origin-agnostic; the deployment's proxy decides
	// which origins may reach it.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client tracks a websocket connection with its source IP
type client struct {
	conn *websocket.Conn
	ip   string
}

// Hub fans snapshot messages out to every connected websocket client
type Hub struct {
	logger  *slog.Logger
	metrics *metrics.Metrics

	register   chan *client
	unregister chan *websocket.Conn
	broadcast  chan []byte

	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
	perIP   map[string]int

	maxPerIP int
}

// NewHub creates a new hub
func NewHub(logger *slog.Logger, m *metrics.Metrics) *Hub {
	return &Hub{
		logger:     logger,
		metrics:    m,
		register:   make(chan *client),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 256),
		clients:    make(map[*websocket.Conn]*client),
		perIP:      make(map[string]int),
		maxPerIP:   DefaultMaxConnsPerIP,
	}
}

// Run dispatches register/unregister/broadcast events until ctx is done
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.conn] = c
			h.perIP[c.ip]++
			count := len(h.clients)
			h.mu.Unlock()

			h.logger.Info("ws client connected", slog.String("ip", c.ip), slog.Int("total", count))
			h.metrics.WSConnections.Set(float64(count))

		case conn := <-h.unregister:
			h.drop(conn)

		case message := <-h.broadcast:
			h.mu.RLock()
			var dead []*websocket.Conn
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					dead = append(dead, conn)
				}
			}
			h.mu.RUnlock()

			for _, conn := range dead {
				h.drop(conn)
			}
			h.metrics.WSMessages.Inc()
		}
	}
}

// Broadcast queues a message for every connected client.
// Drops the message when the hub is saturated rather than blocking the
// caller; the next snapshot supersedes it anyway.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
	}
}

// drop removes a connection and releases its IP slot
func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	c, ok := h.clients[conn]
	if ok {
		h.perIP[c.ip]--
		if h.perIP[c.ip] <= 0 {
			delete(h.perIP, c.ip)
		}
		delete(h.clients, conn)
	}
	count := len(h.clients)
	h.mu.Unlock()

	if ok {
		_ = conn.Close()
		h.logger.Info("ws client disconnected", slog.Int("remaining", count))
		h.metrics.WSConnections.Set(float64(count))
	}
}

// closeAll closes every connection on shutdown
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.Close()
	}
	h.clients = make(map[*websocket.Conn]*client)
	h.perIP = make(map[string]int)
}

// allowIP reports whether another connection from ip fits the cap
func (h *Hub) allowIP(ip string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.perIP[ip] < h.maxPerIP
}

// HandleWS handles GET /api/v1/ws: upgrades the connection and streams
// snapshots until the client goes away. Clients are pure consumers;
// inbound messages are read only to detect disconnects.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)

	if !h.allowIP(ip) {
		http.Error(w, "too many connections", http.StatusTooManyRequests)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", slog.String("error", err.Error()))
		return
	}

	h.register <- &client{conn: conn, ip: ip}

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
