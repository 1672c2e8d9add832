package websocket

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/ports"
)

const (
	TypeUserMessage = "user_message"
	TypeBotMessage  = "bot_message"
	TypeError       = "error"

	WelcomeText = "Hello! I'm your MCP chatbot. I can help you with weather, stocks, and news information. What would you like to know?"
)

// Message is the frame exchanged in both directions.
type Message struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ChatHandler struct {
	bot ports.Chatbot
	hub *Hub
	log *zap.Logger
}

func NewChatHandler(bot ports.Chatbot, hub *Hub, log *zap.Logger) *ChatHandler {
	return &ChatHandler{bot: bot, hub: hub, log: log}
}

// Reply answers one inbound frame.
func (h *ChatHandler) Reply(ctx context.Context, raw []byte) Message {
	var in Message
	if err := json.Unmarshal(raw, &in); err != nil {
		return Message{Type: TypeError, Message: "Invalid message: expected JSON"}
	}

	switch in.Type {
	case TypeUserMessage:
		if strings.TrimSpace(in.Message) == "" {
			return Message{Type: TypeError, Message: "Message must not be empty"}
		}
		return Message{Type: TypeBotMessage, Message: h.bot.Process(ctx, in.Message)}
	default:
		return Message{Type: TypeError, Message: "Unsupported message type: " + in.Type}
	}
}

// Serve runs one session until the client disconnects. It blocks, as the
// connection is released when the handler returns.
func (h *ChatHandler) Serve(conn *websocket.Conn) {
	s := newSession(conn)
	if !h.hub.join(s) {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		return
	}

	log := h.log.With(zap.String("session_id", s.ID))
	log.Info("Chat session opened")

	go s.writePump(log)
	defer func() {
		h.hub.leave(s)
		<-s.writerDone
		log.Info("Chat session closed")
	}()

	if !s.queue(Message{Type: TypeBotMessage, Message: WelcomeText}) {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		messageType, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("Chat session read failed", zap.Error(err))
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		if !s.queue(h.Reply(ctx, raw)) {
			return
		}
	}
}

// queue reports false once the session is closing.
func (s *Session) queue(m Message) bool {
	data, err := json.Marshal(m)
	if err != nil {
		return false
	}
	select {
	case s.send <- data:
		return true
	case <-s.quit:
		return false
	case <-s.writerDone:
		return false
	}
}

// writePump owns all writes to the connection. Closing the connection on exit
// unblocks the reader in Serve.
func (s *Session) writePump(log *zap.Logger) {
	defer close(s.writerDone)
	defer s.conn.Close()

	for {
		select {
		case msg := <-s.send:
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Warn("Chat session write failed", zap.Error(err))
				return
			}
		case <-s.quit:
			s.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// Register mounts the chat endpoint on app.
func Register(app *fiber.App, path string, h *ChatHandler) {
	app.Use(path, func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get(path, websocket.New(h.Serve))
}
