package bootstrap

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/adapter/cache"
	"github.com/seu-repo/mcp-chatbot/internal/adapter/external/alphavantage"
	"github.com/seu-repo/mcp-chatbot/internal/adapter/external/newsapi"
	"github.com/seu-repo/mcp-chatbot/internal/adapter/external/openweather"
	"github.com/seu-repo/mcp-chatbot/internal/adapter/external/rssnews"
	"github.com/seu-repo/mcp-chatbot/pkg/config"
)

func TestNewProviders_NoCache(t *testing.T) {
	cfg := &config.Config{News: config.NewsConfig{Provider: config.NewsProviderNewsAPI}}

	p := NewProviders(cfg, zap.NewNop())
	defer p.Close()

	assert.IsType(t, &openweather.Client{}, p.Weather)
	assert.IsType(t, &alphavantage.Client{}, p.Stocks)
	assert.IsType(t, &newsapi.Client{}, p.News)
	assert.Same(t, p.News, p.Catalog)
	assert.Nil(t, p.Cache)
	assert.NoError(t, p.Close())
}

func TestNewProviders_RSS(t *testing.T) {
	cfg := &config.Config{News: config.NewsConfig{Provider: config.NewsProviderRSS}}

	p := NewProviders(cfg, zap.NewNop())

	assert.IsType(t, &rssnews.Client{}, p.News)
}

func TestNewProviders_RedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Redis: config.RedisConfig{URL: "redis://" + mr.Addr(), KeyPrefix: "mcp:"},
		Cache: config.CacheConfig{Enabled: true},
	}

	p := NewProviders(cfg, zap.NewNop())
	defer p.Close()

	assert.IsType(t, &cache.RedisCache{}, p.Cache)
	assert.IsType(t, &cache.WeatherProvider{}, p.Weather)
	assert.IsType(t, &cache.StockProvider{}, p.Stocks)
	assert.IsType(t, &cache.NewsProvider{}, p.News)
	assert.IsType(t, &newsapi.Client{}, p.Catalog)
}

func TestNewProviders_UnreachableRedisFallsBackToMemory(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{URL: "redis://127.0.0.1:1"},
		Cache: config.CacheConfig{Enabled: true},
	}

	p := NewProviders(cfg, zap.NewNop())
	defer p.Close()

	require.NotNil(t, p.Cache)
	assert.IsType(t, &cache.MemoryCache{}, p.Cache)
}
