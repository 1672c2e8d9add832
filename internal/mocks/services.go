package mocks

import (
	"context"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
)

// errNotStubbed keeps the payload-or-error contract when a test calls a
// method it did not stub.
func errNotStubbed(method string) error {
	return domain.NewConfigurationError("mock", method+" not stubbed")
}

// MockWeatherProvider is a mock implementation of ports.WeatherProvider
type MockWeatherProvider struct {
	CurrentWeatherFunc func(ctx context.Context, city, country string) (*domain.CurrentWeather, error)
	ForecastFunc       func(ctx context.Context, city, country string, days int) (*domain.Forecast, error)

	Calls int
}

func (m *MockWeatherProvider) CurrentWeather(ctx context.Context, city, country string) (*domain.CurrentWeather, error) {
	m.Calls++
	if m.CurrentWeatherFunc != nil {
		return m.CurrentWeatherFunc(ctx, city, country)
	}
	return nil, errNotStubbed("CurrentWeather")
}

func (m *MockWeatherProvider) Forecast(ctx context.Context, city, country string, days int) (*domain.Forecast, error) {
	m.Calls++
	if m.ForecastFunc != nil {
		return m.ForecastFunc(ctx, city, country, days)
	}
	return nil, errNotStubbed("Forecast")
}

// MockStockProvider is a mock implementation of ports.StockProvider
type MockStockProvider struct {
	QuoteFunc         func(ctx context.Context, symbol string) (*domain.StockQuote, error)
	SearchSymbolsFunc func(ctx context.Context, keywords string) (*domain.SymbolSearch, error)
	IntradayFunc      func(ctx context.Context, symbol, interval string) (*domain.IntradaySeries, error)

	Calls int
}

func (m *MockStockProvider) Quote(ctx context.Context, symbol string) (*domain.StockQuote, error) {
	m.Calls++
	if m.QuoteFunc != nil {
		return m.QuoteFunc(ctx, symbol)
	}
	return nil, errNotStubbed("Quote")
}

func (m *MockStockProvider) SearchSymbols(ctx context.Context, keywords string) (*domain.SymbolSearch, error) {
	m.Calls++
	if m.SearchSymbolsFunc != nil {
		return m.SearchSymbolsFunc(ctx, keywords)
	}
	return nil, errNotStubbed("SearchSymbols")
}

func (m *MockStockProvider) Intraday(ctx context.Context, symbol, interval string) (*domain.IntradaySeries, error) {
	m.Calls++
	if m.IntradayFunc != nil {
		return m.IntradayFunc(ctx, symbol, interval)
	}
	return nil, errNotStubbed("Intraday")
}

// MockNewsProvider is a mock implementation of ports.NewsProvider and
// ports.NewsCatalog
type MockNewsProvider struct {
	TopHeadlinesFunc   func(ctx context.Context, country, category string, pageSize int) (*domain.NewsResult, error)
	SearchArticlesFunc func(ctx context.Context, query string, opts domain.SearchOptions) (*domain.NewsResult, error)
	CategoriesFunc     func() []string
	CountriesFunc      func() []domain.Country

	Calls int
}

func (m *MockNewsProvider) TopHeadlines(ctx context.Context, country, category string, pageSize int) (*domain.NewsResult, error) {
	m.Calls++
	if m.TopHeadlinesFunc != nil {
		return m.TopHeadlinesFunc(ctx, country, category, pageSize)
	}
	return nil, errNotStubbed("TopHeadlines")
}

func (m *MockNewsProvider) SearchArticles(ctx context.Context, query string, opts domain.SearchOptions) (*domain.NewsResult, error) {
	m.Calls++
	if m.SearchArticlesFunc != nil {
		return m.SearchArticlesFunc(ctx, query, opts)
	}
	return nil, errNotStubbed("SearchArticles")
}

func (m *MockNewsProvider) Categories() []string {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc()
	}
	return domain.NewsCategories()
}

func (m *MockNewsProvider) Countries() []domain.Country {
	if m.CountriesFunc != nil {
		return m.CountriesFunc()
	}
	return domain.NewCountryDirectory().Countries()
}

// MockChatbot is a mock implementation of ports.Chatbot
type MockChatbot struct {
	ProcessFunc func(ctx context.Context, query string) string

	Queries []string
}

func (m *MockChatbot) Process(ctx context.Context, query string) string {
	m.Queries = append(m.Queries, query)
	if m.ProcessFunc != nil {
		return m.ProcessFunc(ctx, query)
	}
	return "echo: " + query
}
