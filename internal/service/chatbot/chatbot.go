// Package chatbot turns a free-text question into exactly one display
// string by routing it to the weather, stock or news provider.
package chatbot

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/observability/telemetry"
	"github.com/seu-repo/mcp-chatbot/internal/ports"
	"github.com/seu-repo/mcp-chatbot/internal/service/format"
	"github.com/seu-repo/mcp-chatbot/internal/service/nlu"
)

type replyStatus int

const (
	// notMatched: the handler does not own this query.
	notMatched replyStatus = iota
	// noSlots: the intent matched but nothing usable could be extracted.
	noSlots
	// replied: the handler produced the answer, possibly a failure message.
	replied
)

type reply struct {
	status replyStatus
	text   string
	failed bool
}

func answer(text string) reply { return reply{status: replied, text: text} }

func failure(msg string, args ...interface{}) reply {
	return reply{status: replied, text: format.Error(fmt.Sprintf(msg, args...)), failed: true}
}

type handler func(ctx context.Context, q nlu.Query) reply

type route struct {
	intent domain.Intent
	handle handler
}

// Chatbot is safe for concurrent use: it holds no per-query state.
type Chatbot struct {
	classifier *nlu.Classifier
	extractor  *nlu.Extractor
	weather    ports.WeatherProvider
	stocks     ports.StockProvider
	news       ports.NewsProvider
	log        *zap.Logger
	pick       func(n int) int
	routes     []route
}

type Option func(*Chatbot)

// WithPicker replaces the random choice among canned replies.
func WithPicker(pick func(n int) int) Option {
	return func(c *Chatbot) { c.pick = pick }
}

func New(
	tables *nlu.Tables,
	weather ports.WeatherProvider,
	stocks ports.StockProvider,
	news ports.NewsProvider,
	log *zap.Logger,
	opts ...Option,
) *Chatbot {
	c := &Chatbot{
		classifier: nlu.NewClassifier(tables),
		extractor:  nlu.NewExtractor(tables),
		weather:    weather,
		stocks:     stocks,
		news:       news,
		log:        log,
		pick:       rand.Intn,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.routes = []route{
		{domain.IntentGreeting, c.handleGreeting},
		{domain.IntentHelp, c.handleHelp},
		{domain.IntentGoodbye, c.handleGoodbye},
		{domain.IntentWeather, c.handleWeather},
		{domain.IntentStock, c.handleStock},
		{domain.IntentNews, c.handleNews},
	}
	return c
}

// Classify exposes the intent a query would be routed to first.
func (c *Chatbot) Classify(query string) domain.Intent {
	return c.classifier.Classify(nlu.NewQuery(query))
}

// Process always returns a display string. Provider failures come back as
// messages carrying the failure marker.
func (c *Chatbot) Process(ctx context.Context, query string) string {
	start := time.Now()
	q := nlu.NewQuery(query)
	intent := c.classifier.Classify(q)

	text, answeredBy, outcome := c.dispatch(ctx, q, intent)

	telemetry.ChatQueriesTotal.WithLabelValues(answeredBy.String(), outcome).Inc()
	telemetry.ChatLatency.Observe(time.Since(start).Seconds())
	c.log.Debug("Query processed",
		zap.String("classified", intent.String()),
		zap.String("answered_by", answeredBy.String()),
		zap.String("outcome", outcome),
		zap.Duration("duration", time.Since(start)),
	)
	return text
}

func (c *Chatbot) dispatch(ctx context.Context, q nlu.Query, intent domain.Intent) (string, domain.Intent, string) {
	for _, r := range c.routes[c.startIndex(intent):] {
		if !c.classifier.Matches(r.intent, q) {
			continue
		}
		rep := c.run(ctx, r, q)
		switch rep.status {
		case replied:
			if rep.failed {
				return rep.text, r.intent, "error"
			}
			return rep.text, r.intent, "ok"
		case noSlots:
			c.log.Debug("No slots extracted, falling through", zap.String("intent", r.intent.String()))
		}
	}
	return c.fallback(q), domain.IntentUnmatched, "fallback"
}

func (c *Chatbot) startIndex(intent domain.Intent) int {
	for i, r := range c.routes {
		if r.intent == intent {
			return i
		}
	}
	return len(c.routes)
}

func (c *Chatbot) run(ctx context.Context, r route, q nlu.Query) (rep reply) {
	defer func() {
		if p := recover(); p != nil {
			c.log.Error("Handler panicked",
				zap.String("intent", r.intent.String()),
				zap.Any("panic", p),
			)
			rep = failure("Sorry, there was an error getting %s information: %v", r.intent, p)
		}
	}()
	return r.handle(ctx, q)
}

func (c *Chatbot) handleGreeting(_ context.Context, _ nlu.Query) reply {
	return answer(greetings[c.pick(len(greetings))])
}

func (c *Chatbot) handleHelp(_ context.Context, _ nlu.Query) reply {
	return answer(helpText)
}

func (c *Chatbot) handleGoodbye(_ context.Context, _ nlu.Query) reply {
	return answer(goodbyeText)
}

func (c *Chatbot) fallback(q nlu.Query) string {
	options := fallbacks(q.Raw)
	return options[c.pick(len(options))]
}
