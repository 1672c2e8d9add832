package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/mcp-chatbot/internal/adapter/http/fiber/middleware"
	wsAdapter "github.com/seu-repo/mcp-chatbot/internal/adapter/websocket"
	"github.com/seu-repo/mcp-chatbot/internal/ports"
	"github.com/seu-repo/mcp-chatbot/pkg/config"
)

// Dependencies are the services the HTTP surface exposes. Cache and Chat are
// optional.
type Dependencies struct {
	Weather ports.WeatherProvider
	Stocks  ports.StockProvider
	News    ports.NewsProvider
	Catalog ports.NewsCatalog
	Bot     ports.Chatbot
	Cache   ports.Cache
	Chat    *wsAdapter.ChatHandler
}

// New builds the fiber application with middleware and every route mounted.
func New(cfg *config.Config, deps Dependencies, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ServerHeader:          cfg.App.Name,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		ErrorHandler:          middleware.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "${time} ${locals:request_id} ${status} ${latency} ${method} ${path}\n",
		TimeFormat: time.RFC3339,
	}))
	if cfg.CORS.Enabled {
		app.Use(middleware.NewCORS(cfg.CORS))
	}

	health := handlers.NewHealthHandler(deps.Cache, log)
	app.Get("/health", health.Health)
	app.Get("/health/ready", health.Ready)

	if cfg.Prometheus.Enabled {
		metrics := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		app.Get(cfg.Prometheus.Path, func(c *fiber.Ctx) error {
			metrics(c.Context())
			return nil
		})
	}

	if deps.Chat != nil {
		wsAdapter.Register(app, "/ws", deps.Chat)
	}

	// Routes registered before this group bypass the load shedder.
	api := app.Group("", middleware.LoadShedder(log))

	weather := handlers.NewWeatherHandler(deps.Weather, log)
	api.Post("/weather/current", weather.Current)
	api.Post("/weather/forecast", weather.Forecast)

	stocks := handlers.NewStockHandler(deps.Stocks, log)
	api.Post("/stock/quote", stocks.Quote)
	api.Post("/stock/intraday", stocks.Intraday)
	api.Post("/stock/search", stocks.Search)

	news := handlers.NewNewsHandler(deps.News, deps.Catalog, log)
	api.Post("/news/headlines", news.Headlines)
	api.Post("/news/search", news.Search)
	api.Get("/news/categories", news.Categories)
	api.Get("/news/countries", news.Countries)

	chat := handlers.NewChatHandler(deps.Bot, log)
	api.Post("/chat", chat.Message)

	return app
}
