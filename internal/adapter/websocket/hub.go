package websocket

import (
	"context"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/seu-repo/mcp-chatbot/internal/observability/telemetry"
)

const sendBuffer = 16

// Hub tracks the open chat sessions. Each session owns its connection; the
// hub only registers sessions and fans out server notices.
type Hub struct {
	sessions   map[*Session]struct{}
	broadcast  chan []byte
	register   chan *Session
	unregister chan *Session
	done       chan struct{}

	mu sync.RWMutex
}

// Session is one WebSocket chat connection.
type Session struct {
	ID   string
	conn *websocket.Conn
	send chan []byte
	// quit is closed by the hub when the session is dropped.
	quit chan struct{}
	// writerDone is closed when the write pump exits.
	writerDone chan struct{}
	closeOnce  sync.Once
}

func NewHub() *Hub {
	return &Hub{
		sessions:   make(map[*Session]struct{}),
		broadcast:  make(chan []byte),
		register:   make(chan *Session),
		unregister: make(chan *Session),
		done:       make(chan struct{}),
	}
}

func newSession(conn *websocket.Conn) *Session {
	return &Session{
		ID:         uuid.NewString(),
		conn:       conn,
		send:       make(chan []byte, sendBuffer),
		quit:       make(chan struct{}),
		writerDone: make(chan struct{}),
	}
}

// Run serves registrations until ctx is done, then closes every session.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case s := <-h.register:
			h.mu.Lock()
			h.sessions[s] = struct{}{}
			h.mu.Unlock()
			telemetry.ActiveChatSessions.Inc()

		case s := <-h.unregister:
			h.remove(s)

		case msg := <-h.broadcast:
			h.mu.Lock()
			for s := range h.sessions {
				select {
				case s.send <- msg:
				default:
					h.drop(s)
				}
			}
			h.mu.Unlock()

		case <-ctx.Done():
			h.mu.Lock()
			for s := range h.sessions {
				h.drop(s)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Broadcast queues msg for every open session. Sessions that cannot keep up
// are dropped.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// join reports false when the hub is no longer running.
func (h *Hub) join(s *Session) bool {
	select {
	case h.register <- s:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(s *Session) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// Count returns the number of open sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (h *Hub) remove(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[s]; ok {
		h.drop(s)
	}
}

// drop must be called with h.mu held.
func (h *Hub) drop(s *Session) {
	delete(h.sessions, s)
	s.closeOnce.Do(func() { close(s.quit) })
	telemetry.ActiveChatSessions.Dec()
}
