package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/observability/telemetry"
	"github.com/seu-repo/mcp-chatbot/internal/ports"
)

// TTLs holds the lifetime of each cached response family.
type TTLs struct {
	Weather time.Duration
	Stock   time.Duration
	News    time.Duration
}

func DefaultTTLs() TTLs {
	return TTLs{
		Weather: 10 * time.Minute,
		Stock:   time.Minute,
		News:    5 * time.Minute,
	}
}

// lookup serves key from c when present, otherwise calls fetch and stores a
// successful result. Errors are never cached, and cache failures only cost
// a provider call.
func lookup[T any](ctx context.Context, c ports.Cache, log *zap.Logger, op, key string, ttl time.Duration, fetch func() (*T, error)) (*T, error) {
	if raw, err := c.Get(ctx, key); err == nil {
		var out T
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			telemetry.CacheLookupsTotal.WithLabelValues(op, "hit").Inc()
			return &out, nil
		}
		log.Warn("Discarding unreadable cache entry", zap.String("key", key))
	} else if !errors.Is(err, ErrMiss) {
		log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}
	telemetry.CacheLookupsTotal.WithLabelValues(op, "miss").Inc()

	out, err := fetch()
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, key, out, ttl); err != nil {
		log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}

func key(parts ...string) string {
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, ":")
}

// WeatherProvider caches a ports.WeatherProvider.
type WeatherProvider struct {
	next  ports.WeatherProvider
	cache ports.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewWeatherProvider(next ports.WeatherProvider, c ports.Cache, ttl time.Duration, log *zap.Logger) *WeatherProvider {
	return &WeatherProvider{next: next, cache: c, ttl: ttl, log: log}
}

func (p *WeatherProvider) CurrentWeather(ctx context.Context, city, country string) (*domain.CurrentWeather, error) {
	return lookup(ctx, p.cache, p.log, "weather_current", key("weather", "current", city, country), p.ttl,
		func() (*domain.CurrentWeather, error) { return p.next.CurrentWeather(ctx, city, country) })
}

func (p *WeatherProvider) Forecast(ctx context.Context, city, country string, days int) (*domain.Forecast, error) {
	return lookup(ctx, p.cache, p.log, "weather_forecast", key("weather", "forecast", city, country, strconv.Itoa(days)), p.ttl,
		func() (*domain.Forecast, error) { return p.next.Forecast(ctx, city, country, days) })
}

// StockProvider caches a ports.StockProvider.
type StockProvider struct {
	next  ports.StockProvider
	cache ports.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewStockProvider(next ports.StockProvider, c ports.Cache, ttl time.Duration, log *zap.Logger) *StockProvider {
	return &StockProvider{next: next, cache: c, ttl: ttl, log: log}
}

func (p *StockProvider) Quote(ctx context.Context, symbol string) (*domain.StockQuote, error) {
	return lookup(ctx, p.cache, p.log, "stock_quote", key("stock", "quote", symbol), p.ttl,
		func() (*domain.StockQuote, error) { return p.next.Quote(ctx, symbol) })
}

func (p *StockProvider) SearchSymbols(ctx context.Context, keywords string) (*domain.SymbolSearch, error) {
	return lookup(ctx, p.cache, p.log, "stock_search", key("stock", "search", keywords), p.ttl,
		func() (*domain.SymbolSearch, error) { return p.next.SearchSymbols(ctx, keywords) })
}

func (p *StockProvider) Intraday(ctx context.Context, symbol, interval string) (*domain.IntradaySeries, error) {
	return lookup(ctx, p.cache, p.log, "stock_intraday", key("stock", "intraday", symbol, interval), p.ttl,
		func() (*domain.IntradaySeries, error) { return p.next.Intraday(ctx, symbol, interval) })
}

// NewsProvider caches a ports.NewsProvider.
type NewsProvider struct {
	next  ports.NewsProvider
	cache ports.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewNewsProvider(next ports.NewsProvider, c ports.Cache, ttl time.Duration, log *zap.Logger) *NewsProvider {
	return &NewsProvider{next: next, cache: c, ttl: ttl, log: log}
}

func (p *NewsProvider) TopHeadlines(ctx context.Context, country, category string, pageSize int) (*domain.NewsResult, error) {
	return lookup(ctx, p.cache, p.log, "news_headlines", key("news", "headlines", country, category, strconv.Itoa(pageSize)), p.ttl,
		func() (*domain.NewsResult, error) { return p.next.TopHeadlines(ctx, country, category, pageSize) })
}

func (p *NewsProvider) SearchArticles(ctx context.Context, query string, opts domain.SearchOptions) (*domain.NewsResult, error) {
	k := key("news", "search", query, opts.Language, opts.SortBy, strconv.Itoa(opts.PageSize))
	return lookup(ctx, p.cache, p.log, "news_search", k, p.ttl,
		func() (*domain.NewsResult, error) { return p.next.SearchArticles(ctx, query, opts) })
}
