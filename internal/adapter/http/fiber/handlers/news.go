package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/ports"
)

const (
	defaultNewsCountry = "us"
	defaultNewsLimit   = 5
)

var (
	headlinesSchema = mustSchema(object(nil, map[string]interface{}{
		"country":  str(map[string]interface{}{"pattern": "^[A-Za-z]{2}$"}),
		"category": str(map[string]interface{}{"enum": domain.NewsCategories()}),
		"limit":    integer(1, 100),
	}))
	newsSearchSchema = mustSchema(object([]string{"query"}, map[string]interface{}{
		"query": str(map[string]interface{}{"minLength": 1}),
		"limit": integer(1, 100),
	}))
)

type NewsHandler struct {
	news    ports.NewsProvider
	catalog ports.NewsCatalog
	log     *zap.Logger
}

func NewNewsHandler(news ports.NewsProvider, catalog ports.NewsCatalog, log *zap.Logger) *NewsHandler {
	return &NewsHandler{news: news, catalog: catalog, log: log}
}

type NewsRequest struct {
	Query    string `json:"query"`
	Country  string `json:"country"`
	Category string `json:"category"`
	Limit    int    `json:"limit"`
}

func (r *NewsRequest) applyDefaults() {
	if r.Country == "" {
		r.Country = defaultNewsCountry
	}
	if r.Limit == 0 {
		r.Limit = defaultNewsLimit
	}
}

func (h *NewsHandler) Headlines(c *fiber.Ctx) error {
	var req NewsRequest
	if err := bind(c, headlinesSchema, &req); err != nil {
		return err
	}
	req.applyDefaults()

	result, err := h.news.TopHeadlines(c.UserContext(), req.Country, req.Category, req.Limit)
	if err != nil {
		h.log.Warn("Headlines lookup failed",
			zap.String("country", req.Country),
			zap.String("category", req.Category),
			zap.Error(err),
		)
	}
	return respond(c, result, err)
}

func (h *NewsHandler) Search(c *fiber.Ctx) error {
	var req NewsRequest
	if err := bind(c, newsSearchSchema, &req); err != nil {
		return err
	}
	req.applyDefaults()

	result, err := h.news.SearchArticles(c.UserContext(), strings.TrimSpace(req.Query), domain.SearchOptions{PageSize: req.Limit})
	if err != nil {
		h.log.Warn("News search failed", zap.String("query", req.Query), zap.Error(err))
	}
	return respond(c, result, err)
}

func (h *NewsHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"result": h.catalog.Categories()})
}

func (h *NewsHandler) Countries(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"result": h.catalog.Countries()})
}
