package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/adapter/http/fiber/router"
	wsAdapter "github.com/seu-repo/mcp-chatbot/internal/adapter/websocket"
	"github.com/seu-repo/mcp-chatbot/internal/bootstrap"
	"github.com/seu-repo/mcp-chatbot/internal/observability/logging"
	"github.com/seu-repo/mcp-chatbot/internal/observability/telemetry"
	"github.com/seu-repo/mcp-chatbot/internal/service/chatbot"
	"github.com/seu-repo/mcp-chatbot/internal/service/nlu"
	"github.com/seu-repo/mcp-chatbot/pkg/config"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// 2. Initialize Logger
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	logger.Info("Starting MCP Chatbot",
		zap.String("service", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)
	for _, w := range cfg.Validate() {
		logger.Warn(w)
	}

	// 3. Initialize OpenTelemetry (Distributed Tracing)
	tracerProvider, err := telemetry.InitTracer(telemetry.TracerConfig{
		Enabled:        cfg.OpenTelemetry.Enabled,
		ServiceName:    cfg.OpenTelemetry.ServiceName,
		ServiceVersion: cfg.App.Version,
		Endpoint:       cfg.OpenTelemetry.Jaeger.Endpoint,
		SampleRatio:    cfg.OpenTelemetry.Jaeger.SamplerParam,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// 4. Initialize Provider Clients (and optional response cache)
	providers := bootstrap.NewProviders(cfg, logger)
	defer providers.Close()

	// 5. Initialize Chatbot
	bot := chatbot.New(nlu.DefaultTables(), providers.Weather, providers.Stocks, providers.News, logger)

	// 6. Initialize WebSocket Hub
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := wsAdapter.NewHub()
	go hub.Run(hubCtx)

	// 7. Initialize Fiber HTTP Server
	app := router.New(cfg, router.Dependencies{
		Weather: providers.Weather,
		Stocks:  providers.Stocks,
		News:    providers.News,
		Catalog: providers.Catalog,
		Bot:     bot,
		Cache:   providers.Cache,
		Chat:    wsAdapter.NewChatHandler(bot, hub, logger),
	}, logger)

	// 8. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.String("addr", cfg.Address()))
		if err := app.Listen(cfg.Address()); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 9. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", zap.Int("chat_sessions", hub.Count()))

	notice, _ := json.Marshal(wsAdapter.Message{Type: wsAdapter.TypeBotMessage, Message: "The server is restarting. Please reconnect in a moment."})
	hub.Broadcast(notice)
	stopHub()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
