package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/ports"
)

var services = []string{"weather", "stock", "news"}

type HealthHandler struct {
	cache ports.Cache
	log   *zap.Logger
}

// NewHealthHandler builds the health endpoints. cache may be nil when
// response caching is disabled.
func NewHealthHandler(cache ports.Cache, log *zap.Logger) *HealthHandler {
	return &HealthHandler{cache: cache, log: log}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy", "services": services})
}

func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.cache != nil {
		if err := h.cache.Ping(); err != nil {
			h.log.Warn("Cache not ready", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "error": "cache not ready"})
		}
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
