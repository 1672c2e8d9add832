package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/ports"
)

var chatSchema = mustSchema(object([]string{"message"}, map[string]interface{}{
	"message": str(map[string]interface{}{"minLength": 1, "maxLength": 1000}),
}))

type ChatHandler struct {
	bot ports.Chatbot
	log *zap.Logger
}

func NewChatHandler(bot ports.Chatbot, log *zap.Logger) *ChatHandler {
	return &ChatHandler{bot: bot, log: log}
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

func (h *ChatHandler) Message(c *fiber.Ctx) error {
	var req ChatRequest
	if err := bind(c, chatSchema, &req); err != nil {
		return err
	}
	return c.JSON(ChatResponse{Response: h.bot.Process(c.UserContext(), req.Message)})
}
