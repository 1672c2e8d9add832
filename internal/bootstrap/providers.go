// Package bootstrap builds the provider graph shared by the server and the
// console binaries.
package bootstrap

import (
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/adapter/cache"
	"github.com/seu-repo/mcp-chatbot/internal/adapter/external/alphavantage"
	"github.com/seu-repo/mcp-chatbot/internal/adapter/external/newsapi"
	"github.com/seu-repo/mcp-chatbot/internal/adapter/external/openweather"
	"github.com/seu-repo/mcp-chatbot/internal/adapter/external/rssnews"
	"github.com/seu-repo/mcp-chatbot/internal/infrastructure/circuitbreaker"
	"github.com/seu-repo/mcp-chatbot/internal/ports"
	"github.com/seu-repo/mcp-chatbot/pkg/config"
)

// Providers is the wired set of outbound services.
type Providers struct {
	Weather ports.WeatherProvider
	Stocks  ports.StockProvider
	News    ports.NewsProvider
	Catalog ports.NewsCatalog
	// Cache is nil when response caching is disabled.
	Cache ports.Cache
}

// Close releases the response cache, if any.
func (p *Providers) Close() error {
	if p.Cache == nil {
		return nil
	}
	return p.Cache.Close()
}

// NewProviders builds the provider clients from cfg and, when enabled, wraps
// them in the response cache. A Redis that cannot be reached falls back to
// the in-memory cache.
func NewProviders(cfg *config.Config, log *zap.Logger) *Providers {
	breaker := circuitbreaker.Settings{
		MaxRequests:      cfg.CircuitBreaker.MaxRequests,
		Interval:         cfg.CircuitBreaker.Interval,
		Timeout:          cfg.CircuitBreaker.Timeout,
		FailureThreshold: cfg.CircuitBreaker.FailureThreshold,
	}

	weather := openweather.NewClient(&openweather.Config{
		BaseURL: cfg.Weather.BaseURL,
		APIKey:  cfg.Weather.APIKey,
		Units:   cfg.Weather.Units,
		Timeout: cfg.Weather.Timeout,
		Breaker: breaker,
	}, log)

	stocks := alphavantage.NewClient(&alphavantage.Config{
		BaseURL:           cfg.Stock.BaseURL,
		APIKey:            cfg.Stock.APIKey,
		Timeout:           cfg.Stock.Timeout,
		RequestsPerMinute: cfg.Stock.RequestsPerMinute,
		Breaker:           breaker,
	}, log)

	var news interface {
		ports.NewsProvider
		ports.NewsCatalog
	}
	switch cfg.News.Provider {
	case config.NewsProviderRSS:
		news = rssnews.NewClient(&rssnews.Config{
			Feeds:         cfg.News.RSS.Feeds,
			CategoryFeeds: cfg.News.RSS.CategoryFeeds,
			Timeout:       cfg.News.Timeout,
			Breaker:       breaker,
		}, log)
	default:
		news = newsapi.NewClient(&newsapi.Config{
			BaseURL: cfg.News.BaseURL,
			APIKey:  cfg.News.APIKey,
			Timeout: cfg.News.Timeout,
			Breaker: breaker,
		}, log)
	}
	log.Info("News provider selected", zap.String("provider", cfg.News.Provider))

	p := &Providers{Weather: weather, Stocks: stocks, News: news, Catalog: news}
	if !cfg.Cache.Enabled {
		return p
	}

	p.Cache = newCache(cfg, log)
	p.Weather = cache.NewWeatherProvider(p.Weather, p.Cache, cfg.Cache.WeatherTTL, log)
	p.Stocks = cache.NewStockProvider(p.Stocks, p.Cache, cfg.Cache.StockTTL, log)
	p.News = cache.NewNewsProvider(p.News, p.Cache, cfg.Cache.NewsTTL, log)
	return p
}

func newCache(cfg *config.Config, log *zap.Logger) ports.Cache {
	if cfg.Redis.URL != "" {
		rc, err := cache.NewRedisCache(cfg.Redis.URL, cfg.Redis.KeyPrefix, log)
		if err == nil {
			return rc
		}
		log.Warn("Redis unavailable, using in-memory cache", zap.Error(err))
	}
	return cache.NewMemoryCache(cfg.Cache.SweepInterval, log)
}
