package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/mocks"
)

func TestWeatherProvider_CachesSuccess(t *testing.T) {
	next := &mocks.MockWeatherProvider{
		CurrentWeatherFunc: func(_ context.Context, city, _ string) (*domain.CurrentWeather, error) {
			return &domain.CurrentWeather{City: city, Humidity: 40}, nil
		},
	}
	c := NewMemoryCache(time.Hour, zap.NewNop())
	defer c.Close()
	p := NewWeatherProvider(next, c, time.Minute, zap.NewNop())
	ctx := context.Background()

	first, err := p.CurrentWeather(ctx, "Tokyo", "")
	require.NoError(t, err)
	second, err := p.CurrentWeather(ctx, " tokyo ", "")
	require.NoError(t, err)

	assert.Equal(t, 1, next.Calls)
	assert.Equal(t, first, second)
}

func TestWeatherProvider_ForecastKeyIncludesDays(t *testing.T) {
	next := &mocks.MockWeatherProvider{
		ForecastFunc: func(_ context.Context, city, _ string, days int) (*domain.Forecast, error) {
			return &domain.Forecast{City: city}, nil
		},
	}
	c := NewMemoryCache(time.Hour, zap.NewNop())
	defer c.Close()
	p := NewWeatherProvider(next, c, time.Minute, zap.NewNop())

	p.Forecast(context.Background(), "Mumbai", "", 3)
	p.Forecast(context.Background(), "Mumbai", "", 5)
	p.Forecast(context.Background(), "Mumbai", "", 3)

	assert.Equal(t, 2, next.Calls)
}

func TestStockProvider_DoesNotCacheErrors(t *testing.T) {
	fail := true
	next := &mocks.MockStockProvider{
		QuoteFunc: func(_ context.Context, symbol string) (*domain.StockQuote, error) {
			if fail {
				return nil, domain.NewUpstreamError("Alpha Vantage", nil, "rate limited")
			}
			return &domain.StockQuote{Symbol: symbol, Price: 10}, nil
		},
	}
	c := mocks.NewMockCache()
	p := NewStockProvider(next, c, time.Minute, zap.NewNop())
	ctx := context.Background()

	_, err := p.Quote(ctx, "AAPL")
	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))

	fail = false
	q, err := p.Quote(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 10.0, q.Price)

	p.Quote(ctx, "aapl")
	assert.Equal(t, 2, next.Calls)
}

func TestStockProvider_SearchAndIntraday(t *testing.T) {
	next := &mocks.MockStockProvider{
		SearchSymbolsFunc: func(context.Context, string) (*domain.SymbolSearch, error) {
			return &domain.SymbolSearch{Results: []domain.SymbolMatch{{Symbol: "TSLA"}}, Count: 1}, nil
		},
		IntradayFunc: func(_ context.Context, symbol, interval string) (*domain.IntradaySeries, error) {
			return &domain.IntradaySeries{Symbol: symbol, Interval: interval}, nil
		},
	}
	c := mocks.NewMockCache()
	p := NewStockProvider(next, c, time.Minute, zap.NewNop())
	ctx := context.Background()

	p.SearchSymbols(ctx, "tesla")
	res, err := p.SearchSymbols(ctx, "Tesla")
	require.NoError(t, err)
	assert.Equal(t, "TSLA", res.Results[0].Symbol)

	p.Intraday(ctx, "IBM", "5min")
	p.Intraday(ctx, "IBM", "15min")
	assert.Equal(t, 3, next.Calls)
}

func TestNewsProvider_UnreadableEntryIsRefetched(t *testing.T) {
	next := &mocks.MockNewsProvider{
		TopHeadlinesFunc: func(context.Context, string, string, int) (*domain.NewsResult, error) {
			return &domain.NewsResult{Count: 1, Articles: []domain.Article{{Title: "A"}}}, nil
		},
	}
	c := mocks.NewMockCache()
	c.Set(context.Background(), "news:headlines:us::5", "{not json", 0)
	p := NewNewsProvider(next, c, time.Minute, zap.NewNop())

	res, err := p.TopHeadlines(context.Background(), "us", "", 5)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 1, next.Calls)
}

func TestNewsProvider_CacheFailuresFallThrough(t *testing.T) {
	next := &mocks.MockNewsProvider{
		SearchArticlesFunc: func(context.Context, string, domain.SearchOptions) (*domain.NewsResult, error) {
			return &domain.NewsResult{}, nil
		},
	}
	c := mocks.NewMockCache()
	c.GetFunc = func(context.Context, string) (string, error) { return "", assert.AnError }
	c.SetFunc = func(context.Context, string, interface{}, time.Duration) error { return assert.AnError }
	p := NewNewsProvider(next, c, time.Minute, zap.NewNop())

	for i := 0; i < 2; i++ {
		_, err := p.SearchArticles(context.Background(), "rates", domain.SearchOptions{PageSize: 5})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, next.Calls)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "weather:current:new york:us", key("weather", "current", " New York ", "US"))
	assert.Equal(t, "news:headlines:us::5", key("news", "headlines", "us", "", "5"))
}
