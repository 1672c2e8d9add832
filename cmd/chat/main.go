package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/adapter/cli"
	"github.com/seu-repo/mcp-chatbot/internal/bootstrap"
	"github.com/seu-repo/mcp-chatbot/internal/observability/logging"
	"github.com/seu-repo/mcp-chatbot/internal/service/chatbot"
	"github.com/seu-repo/mcp-chatbot/internal/service/nlu"
	"github.com/seu-repo/mcp-chatbot/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Logs go to stderr at warn level so they do not interleave with the chat.
	level := cfg.Logging.Level
	if level == "info" || level == "debug" {
		level = "warn"
	}
	logger, err := logging.New(level, "console")
	if err != nil {
		return err
	}
	defer logger.Sync()

	for _, w := range cfg.Validate() {
		logger.Warn(w)
	}

	providers := bootstrap.NewProviders(cfg, logger)
	defer providers.Close()

	bot := chatbot.New(nlu.DefaultTables(), providers.Weather, providers.Stocks, providers.News, logger)

	var render cli.Renderer = cli.PlainRenderer
	if cli.IsStdoutTTY() {
		render = cli.MarkdownRenderer(cfg.CLI.WordWrap)
	}

	console := cli.NewConsole(cfg.CLI.HistoryFile)
	defer console.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	repl := cli.NewREPL(bot, providers.Stocks, providers.Catalog, console, os.Stdout, render, logger)
	if err := repl.Run(ctx); err != nil {
		logger.Error("Chat session ended with error", zap.Error(err))
		return err
	}
	return nil
}
