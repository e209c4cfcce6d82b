package notify

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

// client serialises writes; a websocket.Conn allows one concurrent writer.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

// Hub keeps at most one live connection per username.
type Hub struct {
	connections map[string]*client
	mutex       sync.RWMutex
	log         *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		connections: make(map[string]*client),
		log:         log,
	}
}

func (h *Hub) Register(username string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[username]; exists && old != nil {
		_ = old.conn.Close()
	}
	h.connections[username] = &client{conn: conn}
}

// Unregister drops username's connection if it is still conn.
func (h *Hub) Unregister(username string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if current, exists := h.connections[username]; exists && current.conn == conn {
		_ = current.conn.Close()
		delete(h.connections, username)
	}
}

// Notify pushes an event to each distinct username that is online.
// Failures are logged and never returned.
func (h *Hub) Notify(eventType string, payload any, usernames ...string) {
	if h == nil {
		return
	}
	event := Event{Type: eventType, Payload: payload, SentAt: time.Now().UTC()}

	seen := make(map[string]bool, len(usernames))
	for _, username := range usernames {
		if username == "" || seen[username] {
			continue
		}
		seen[username] = true
		h.send(username, event)
	}
}

func (h *Hub) send(username string, event Event) {
	h.mutex.RLock()
	c, exists := h.connections[username]
	h.mutex.RUnlock()
	if !exists {
		return
	}

	if err := c.write(event); err != nil {
		h.log.Warn("notification delivery failed",
			zap.String("username", username), zap.String("event", event.Type), zap.Error(err))
		h.Unregister(username, c.conn)
	}
}

func (h *Hub) IsOnline(username string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[username]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for username, c := range h.connections {
		_ = c.conn.Close()
		delete(h.connections, username)
	}
}
