package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/ports"
)

const defaultInterval = "5min"

var (
	quoteSchema = mustSchema(object([]string{"symbol"}, map[string]interface{}{
		"symbol": str(map[string]interface{}{"minLength": 1, "maxLength": 20}),
	}))
	intradaySchema = mustSchema(object([]string{"symbol"}, map[string]interface{}{
		"symbol":   str(map[string]interface{}{"minLength": 1, "maxLength": 20}),
		"interval": str(map[string]interface{}{"enum": []string{"1min", "5min", "15min", "30min", "60min"}}),
	}))
	symbolSearchSchema = mustSchema(object([]string{"keywords"}, map[string]interface{}{
		"keywords": str(map[string]interface{}{"minLength": 1}),
	}))
)

type StockHandler struct {
	stocks ports.StockProvider
	log    *zap.Logger
}

func NewStockHandler(stocks ports.StockProvider, log *zap.Logger) *StockHandler {
	return &StockHandler{stocks: stocks, log: log}
}

type StockRequest struct {
	Symbol   string `json:"symbol"`
	Interval string `json:"interval"`
	Keywords string `json:"keywords"`
}

func (h *StockHandler) Quote(c *fiber.Ctx) error {
	var req StockRequest
	if err := bind(c, quoteSchema, &req); err != nil {
		return err
	}

	result, err := h.stocks.Quote(c.UserContext(), strings.TrimSpace(req.Symbol))
	if err != nil {
		h.log.Warn("Quote lookup failed", zap.String("symbol", req.Symbol), zap.Error(err))
	}
	return respond(c, result, err)
}

func (h *StockHandler) Intraday(c *fiber.Ctx) error {
	var req StockRequest
	if err := bind(c, intradaySchema, &req); err != nil {
		return err
	}
	if req.Interval == "" {
		req.Interval = defaultInterval
	}

	result, err := h.stocks.Intraday(c.UserContext(), strings.TrimSpace(req.Symbol), req.Interval)
	if err != nil {
		h.log.Warn("Intraday lookup failed", zap.String("symbol", req.Symbol), zap.Error(err))
	}
	return respond(c, result, err)
}

func (h *StockHandler) Search(c *fiber.Ctx) error {
	var req StockRequest
	if err := bind(c, symbolSearchSchema, &req); err != nil {
		return err
	}

	result, err := h.stocks.SearchSymbols(c.UserContext(), strings.TrimSpace(req.Keywords))
	if err != nil {
		h.log.Warn("Symbol search failed", zap.String("keywords", req.Keywords), zap.Error(err))
	}
	return respond(c, result, err)
}
