package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/mocks"
	"github.com/seu-repo/mcp-chatbot/internal/service/nlu"
)

type fixture struct {
	weather *mocks.MockWeatherProvider
	stocks  *mocks.MockStockProvider
	news    *mocks.MockNewsProvider
	bot     *Chatbot
}

func newFixture() *fixture {
	f := &fixture{
		weather: &mocks.MockWeatherProvider{},
		stocks:  &mocks.MockStockProvider{},
		news:    &mocks.MockNewsProvider{},
	}
	f.bot = New(nlu.DefaultTables(), f.weather, f.stocks, f.news, zap.NewNop(),
		WithPicker(func(int) int { return 0 }))
	return f
}

func tokyo() *domain.CurrentWeather {
	return &domain.CurrentWeather{
		City:        "Tokyo",
		Country:     "JP",
		Description: "Clear Sky",
		Temperature: domain.Temperature{Current: 21, FeelsLike: 20, Min: 18, Max: 23},
		Humidity:    40,
		Pressure:    1012,
		WindSpeed:   3.6,
	}
}

func TestProcess_Conversation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	assert.Equal(t, Greetings()[0], f.bot.Process(ctx, "Hello"))
	assert.Equal(t, HelpText(), f.bot.Process(ctx, "What can you do?"))
	assert.Equal(t, GoodbyeText(), f.bot.Process(ctx, "bye"))

	assert.Zero(t, f.weather.Calls+f.stocks.Calls+f.news.Calls)
}

func TestProcess_CurrentWeather(t *testing.T) {
	f := newFixture()
	var gotCity, gotCountry string
	f.weather.CurrentWeatherFunc = func(_ context.Context, city, country string) (*domain.CurrentWeather, error) {
		gotCity, gotCountry = city, country
		return tokyo(), nil
	}

	out := f.bot.Process(context.Background(), "What's the weather in Tokyo?")

	assert.Equal(t, "Tokyo", gotCity)
	assert.Empty(t, gotCountry)
	assert.True(t, strings.HasPrefix(out, "🌤️ **Weather in Tokyo, JP**"), out)
}

func TestProcess_Forecast(t *testing.T) {
	f := newFixture()
	var gotDays int
	f.weather.ForecastFunc = func(_ context.Context, city, _ string, days int) (*domain.Forecast, error) {
		gotDays = days
		return &domain.Forecast{City: city, Country: "IN"}, nil
	}

	out := f.bot.Process(context.Background(), "Weather forecast for Mumbai for 3 days")

	assert.Equal(t, 3, gotDays)
	assert.True(t, strings.HasPrefix(out, "📅 **Weather Forecast for Mumbai, IN**"), out)
}

func TestProcess_WeatherProviderError(t *testing.T) {
	f := newFixture()
	f.weather.CurrentWeatherFunc = func(context.Context, string, string) (*domain.CurrentWeather, error) {
		return nil, domain.NewConfigurationError("OpenWeatherMap", "OpenWeatherMap API key not configured")
	}

	out := f.bot.Process(context.Background(), "weather in Paris")

	assert.Equal(t, "❌ Sorry, I couldn't get weather information for Paris. OpenWeatherMap API key not configured", out)
}

func TestProcess_WeatherWithoutLocationFallsBack(t *testing.T) {
	f := newFixture()

	out := f.bot.Process(context.Background(), "what's the weather")

	assert.Equal(t, Fallbacks("what's the weather")[0], out)
	assert.Zero(t, f.weather.Calls)
}

func TestProcess_StockByCompanyName(t *testing.T) {
	f := newFixture()
	var searched, quoted string
	f.stocks.SearchSymbolsFunc = func(_ context.Context, keywords string) (*domain.SymbolSearch, error) {
		searched = keywords
		return &domain.SymbolSearch{Results: []domain.SymbolMatch{{Symbol: "AAPL", Name: "Apple Inc"}}, Count: 1}, nil
	}
	f.stocks.QuoteFunc = func(_ context.Context, symbol string) (*domain.StockQuote, error) {
		quoted = symbol
		return &domain.StockQuote{Symbol: symbol, Price: 189.5, Change: 1.2}, nil
	}

	out := f.bot.Process(context.Background(), "Show me Apple stock price")

	assert.Equal(t, "Apple", searched)
	assert.Equal(t, "AAPL", quoted)
	assert.True(t, strings.HasPrefix(out, "📈 **AAPL Stock Information**"), out)
}

func TestProcess_StockTickerWhenSearchIsEmpty(t *testing.T) {
	f := newFixture()
	f.stocks.SearchSymbolsFunc = func(context.Context, string) (*domain.SymbolSearch, error) {
		return &domain.SymbolSearch{}, nil
	}
	var quoted string
	f.stocks.QuoteFunc = func(_ context.Context, symbol string) (*domain.StockQuote, error) {
		quoted = symbol
		return &domain.StockQuote{Symbol: symbol, Change: -0.4}, nil
	}

	out := f.bot.Process(context.Background(), "nvda stock")

	assert.Equal(t, "NVDA", quoted)
	assert.True(t, strings.HasPrefix(out, "📉 **NVDA Stock Information**"), out)
}

func TestProcess_StockUnknownCompany(t *testing.T) {
	f := newFixture()
	f.stocks.SearchSymbolsFunc = func(context.Context, string) (*domain.SymbolSearch, error) {
		return &domain.SymbolSearch{}, nil
	}
	f.stocks.QuoteFunc = func(context.Context, string) (*domain.StockQuote, error) {
		return nil, domain.NewUpstreamError("Alpha Vantage", nil, "No data found for symbol: ZZZZ")
	}

	out := f.bot.Process(context.Background(), "ZZZZ stock")

	assert.Equal(t, "❌ Sorry, I couldn't find stock information for 'ZZZZ'. Try searching for a different company or use the stock symbol directly.", out)
}

func TestProcess_StockMissingKey(t *testing.T) {
	f := newFixture()
	missing := domain.NewConfigurationError("Alpha Vantage", "Alpha Vantage API key not configured")
	f.stocks.SearchSymbolsFunc = func(context.Context, string) (*domain.SymbolSearch, error) { return nil, missing }
	f.stocks.QuoteFunc = func(context.Context, string) (*domain.StockQuote, error) { return nil, missing }

	out := f.bot.Process(context.Background(), "MSFT stock")

	assert.Equal(t, "❌ Sorry, I couldn't get stock information for MSFT. Alpha Vantage API key not configured", out)
}

func TestProcess_StockSearch(t *testing.T) {
	f := newFixture()
	f.stocks.SearchSymbolsFunc = func(_ context.Context, keywords string) (*domain.SymbolSearch, error) {
		assert.Equal(t, "tech", keywords)
		return &domain.SymbolSearch{Count: 0}, nil
	}

	out := f.bot.Process(context.Background(), "Search for stocks with tech")

	assert.True(t, strings.HasPrefix(out, "🔍 **Stock Search Results (0 found)**"), out)
	assert.Equal(t, 1, f.stocks.Calls)
}

func TestProcess_BareStockFallsBack(t *testing.T) {
	f := newFixture()

	out := f.bot.Process(context.Background(), "stock")

	assert.Equal(t, Fallbacks("stock")[0], out)
	assert.Zero(t, f.stocks.Calls)
}

func TestProcess_Headlines(t *testing.T) {
	f := newFixture()
	f.news.TopHeadlinesFunc = func(_ context.Context, country, category string, pageSize int) (*domain.NewsResult, error) {
		assert.Equal(t, "us", country)
		assert.Equal(t, "technology", category)
		assert.Equal(t, 5, pageSize)
		return &domain.NewsResult{Articles: []domain.Article{{Title: "Chips"}}, Count: 1}, nil
	}

	out := f.bot.Process(context.Background(), "Get technology news")

	assert.True(t, strings.HasPrefix(out, "📰 **News (1 articles)**"), out)
	assert.Contains(t, out, "1. **Chips**")
}

func TestProcess_HeadlinesInsideSentence(t *testing.T) {
	queries := []string{
		"What are the top headlines today?",
		"Can you show me the latest news?",
		"Tell me the top headlines",
	}

	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			f := newFixture()
			calls := 0
			f.news.TopHeadlinesFunc = func(_ context.Context, country, category string, pageSize int) (*domain.NewsResult, error) {
				calls++
				assert.Equal(t, "us", country)
				assert.Empty(t, category)
				return &domain.NewsResult{Articles: []domain.Article{{Title: "Markets rally"}}, Count: 1}, nil
			}

			out := f.bot.Process(context.Background(), query)

			assert.Equal(t, 1, calls)
			assert.True(t, strings.HasPrefix(out, "📰 **News (1 articles)**"), out)
		})
	}
}

func TestProcess_NewsSearch(t *testing.T) {
	f := newFixture()
	f.news.SearchArticlesFunc = func(_ context.Context, query string, opts domain.SearchOptions) (*domain.NewsResult, error) {
		assert.Equal(t, 5, opts.PageSize)
		return &domain.NewsResult{}, nil
	}

	out := f.bot.Process(context.Background(), "search for news about climate change")

	assert.True(t, strings.HasPrefix(out, "🔍 **Search Results for 'climate change' (0 articles)**"), out)
}

func TestProcess_NewsUnknownCountry(t *testing.T) {
	f := newFixture()

	out := f.bot.Process(context.Background(), "news from Atlantis")

	assert.Equal(t, "❌ Sorry, I don't recognize 'Atlantis' as a country. Try using country codes like 'US', 'GB', 'IN'.", out)
	assert.Zero(t, f.news.Calls)
}

func TestProcess_NewsByCountryError(t *testing.T) {
	f := newFixture()
	f.news.TopHeadlinesFunc = func(_ context.Context, country, _ string, _ int) (*domain.NewsResult, error) {
		assert.Equal(t, "de", country)
		return nil, domain.NewTransportError("NewsAPI", errors.New("dial tcp"), "Failed to fetch headlines: connection refused")
	}

	out := f.bot.Process(context.Background(), "Latest news from Germany")

	assert.Equal(t, "❌ Sorry, I couldn't get news from Germany. Failed to fetch headlines: connection refused", out)
}

func TestProcess_HandlerPanicIsContained(t *testing.T) {
	f := newFixture()
	f.weather.CurrentWeatherFunc = func(context.Context, string, string) (*domain.CurrentWeather, error) {
		panic("boom")
	}

	var out string
	require.NotPanics(t, func() {
		out = f.bot.Process(context.Background(), "weather in Oslo")
	})
	assert.Equal(t, "❌ Sorry, there was an error getting weather information: boom", out)
}

func TestProcess_Unmatched(t *testing.T) {
	f := newFixture()

	out := f.bot.Process(context.Background(), "tell me a joke")

	assert.Equal(t, "I'm not sure I understood 'tell me a joke'. Try asking me about weather, stocks, or news!", out)
}

func TestClassify(t *testing.T) {
	f := newFixture()

	assert.Equal(t, domain.IntentGreeting, f.bot.Classify("hello, weather in Rome"))
	assert.Equal(t, domain.IntentNews, f.bot.Classify("top headlines"))
	assert.Equal(t, domain.IntentUnmatched, f.bot.Classify("tell me a joke"))
}

func TestCannedRepliesAreCopies(t *testing.T) {
	g := Greetings()
	g[0] = "changed"
	assert.NotEqual(t, "changed", Greetings()[0])
	assert.Len(t, Fallbacks("x"), 4)
}
