package ports

import (
	"context"
	"time"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
)

// WeatherProvider returns current conditions and three-hour forecasts.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city, country string) (*domain.CurrentWeather, error)
	Forecast(ctx context.Context, city, country string, days int) (*domain.Forecast, error)
}

type StockProvider interface {
	Quote(ctx context.Context, symbol string) (*domain.StockQuote, error)
	SearchSymbols(ctx context.Context, keywords string) (*domain.SymbolSearch, error)
	Intraday(ctx context.Context, symbol, interval string) (*domain.IntradaySeries, error)
}

type NewsProvider interface {
	TopHeadlines(ctx context.Context, country, category string, pageSize int) (*domain.NewsResult, error)
	SearchArticles(ctx context.Context, query string, opts domain.SearchOptions) (*domain.NewsResult, error)
}

// NewsCatalog lists the values a NewsProvider accepts for category and country.
type NewsCatalog interface {
	Categories() []string
	Countries() []domain.Country
}

// Chatbot answers one free-text query with one display string.
type Chatbot interface {
	Process(ctx context.Context, query string) string
}

// Cache stores serialized provider responses.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
