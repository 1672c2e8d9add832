// Package cli is the line-mode chat front end.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/ports"
	"github.com/seu-repo/mcp-chatbot/internal/service/chatbot"
	"github.com/seu-repo/mcp-chatbot/internal/service/format"
)

const (
	botPrefix   = "🤖 Chatbot: "
	farewell    = "Goodbye! Have a great day! 👋"
	interrupted = "Goodbye! 👋"

	defaultIntradayInterval = "5min"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true)
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

var exitWords = []string{"quit", "exit", "bye"}

// LineReader supplies one line of user input per call. It returns io.EOF or
// liner.ErrPromptAborted when the user ends the session.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Renderer turns a markdown reply into display text.
type Renderer func(text string) string

type REPL struct {
	bot     ports.Chatbot
	stocks  ports.StockProvider
	catalog ports.NewsCatalog
	in      LineReader
	out     io.Writer
	render  Renderer
	log     *zap.Logger
}

func NewREPL(bot ports.Chatbot, stocks ports.StockProvider, catalog ports.NewsCatalog, in LineReader, out io.Writer, render Renderer, log *zap.Logger) *REPL {
	if render == nil {
		render = PlainRenderer
	}
	return &REPL{
		bot:     bot,
		stocks:  stocks,
		catalog: catalog,
		in:      in,
		out:     out,
		render:  render,
		log:     log,
	}
}

// Run reads queries until the user quits or input ends.
func (r *REPL) Run(ctx context.Context) error {
	r.banner()

	for {
		if err := ctx.Err(); err != nil {
			r.say(interrupted)
			return nil
		}

		input, err := r.in.ReadLine(promptStyle.Render("👤 You: "))
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(r.out)
				r.say(interrupted)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if isExitWord(input) {
			r.say(farewell)
			return nil
		}

		if strings.HasPrefix(input, "/") {
			if !r.command(ctx, input) {
				r.say(farewell)
				return nil
			}
			continue
		}

		r.reply(r.bot.Process(ctx, input))
	}
}

// command runs a slash command and reports whether the session continues.
func (r *REPL) command(ctx context.Context, input string) bool {
	fields := strings.Fields(input)
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "/help":
		r.reply(chatbot.HelpText() + "\n\n" + commandHelp)
	case "/intraday":
		r.reply(r.intraday(ctx, args))
	case "/categories":
		r.reply(format.Categories(r.catalog.Categories()))
	case "/countries":
		r.reply(format.Countries(r.catalog.Countries()))
	case "/quit", "/exit":
		return false
	default:
		fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf("Unknown command %s. Type /help for the list.", name)))
	}
	return true
}

const commandHelp = `⌨️ **Commands:**
• /intraday SYMBOL [interval]: recent intraday prices
• /categories: news categories
• /countries: news countries
• /quit: leave the chat`

func (r *REPL) intraday(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return format.Error("Usage: /intraday SYMBOL [1min|5min|15min|30min|60min]")
	}
	symbol := strings.ToUpper(args[0])
	interval := defaultIntradayInterval
	if len(args) > 1 {
		interval = args[1]
	}

	series, err := r.stocks.Intraday(ctx, symbol, interval)
	if err != nil {
		r.log.Debug("Intraday command failed", zap.String("symbol", symbol), zap.Error(err))
		return format.Error(fmt.Sprintf("Sorry, I couldn't get intraday data for %s. %s", symbol, domain.ErrorMessage(err)))
	}
	return format.Intraday(series)
}

func (r *REPL) banner() {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(r.out, bannerStyle.Render("🤖 MCP Chatbot Interface"))
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, infoStyle.Render("Type 'help' for assistance or 'quit' to exit"))
	fmt.Fprintln(r.out, rule)
}

func (r *REPL) reply(text string) {
	rendered := r.render(text)
	fmt.Fprintln(r.out)
	fmt.Fprint(r.out, botPrefix+rendered)
	if !strings.HasSuffix(rendered, "\n") {
		fmt.Fprintln(r.out)
	}
}

func (r *REPL) say(text string) {
	fmt.Fprintln(r.out, botPrefix+text)
}

func isExitWord(input string) bool {
	for _, w := range exitWords {
		if strings.EqualFold(input, w) {
			return true
		}
	}
	return false
}
