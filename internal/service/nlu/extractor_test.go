package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
)

func TestExtractor_Weather(t *testing.T) {
	e := NewExtractor(DefaultTables())

	tests := []struct {
		query    string
		expected domain.WeatherRequest
	}{
		{"What's the weather in Tokyo?", domain.WeatherRequest{City: "Tokyo", Days: 5}},
		{"weather in Paris, FR", domain.WeatherRequest{City: "Paris", Country: "FR", Days: 5}},
		{"How's the weather in New York today", domain.WeatherRequest{City: "New York", Days: 5}},
		{"temperature in San Francisco tomorrow?", domain.WeatherRequest{City: "San Francisco", Days: 5}},
		{"Weather forecast for Mumbai for 3 days", domain.WeatherRequest{City: "Mumbai", Days: 3, Forecast: true}},
		{"Show me the forecast for Berlin", domain.WeatherRequest{City: "Berlin", Days: 5, Forecast: true}},
		{"weather in Sydney for the next 2 days", domain.WeatherRequest{City: "Sydney", Days: 2, Forecast: true}},
		{"WEATHER IN rome", domain.WeatherRequest{City: "rome", Days: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req, ok := e.Weather(NewQuery(tt.query))
			assert.True(t, ok)
			assert.Equal(t, tt.expected, req)
		})
	}
}

func TestExtractor_Weather_NoLocation(t *testing.T) {
	e := NewExtractor(DefaultTables())

	for _, q := range []string{"what's the weather", "weather today", "weather in", "weather in today"} {
		_, ok := e.Weather(NewQuery(q))
		assert.False(t, ok, q)
	}
}

func TestExtractor_Stock(t *testing.T) {
	e := NewExtractor(DefaultTables())

	tests := []struct {
		query    string
		expected domain.StockRequest
	}{
		{"What's the stock price of AAPL?", domain.StockRequest{Term: "AAPL"}},
		{"what is the price of the Tesla stock", domain.StockRequest{Term: "Tesla"}},
		{"Search for stocks with tech", domain.StockRequest{Term: "tech", Search: true}},
		{"find stocks for renewable energy", domain.StockRequest{Term: "renewable energy", Search: true}},
		{"MSFT stock", domain.StockRequest{Term: "MSFT"}},
		{"nvda?", domain.StockRequest{Term: "nvda"}},
		{"Show me Apple stock price", domain.StockRequest{Term: "Apple"}},
		{"Microsoft stock", domain.StockRequest{Term: "Microsoft"}},
		{"AAPL find peers for Apple", domain.StockRequest{Term: "Apple", Search: true}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req, ok := e.Stock(NewQuery(tt.query))
			assert.True(t, ok)
			assert.Equal(t, tt.expected, req)
		})
	}
}

func TestExtractor_Stock_NoSymbol(t *testing.T) {
	e := NewExtractor(DefaultTables())

	for _, q := range []string{"stock", "stock price", "what is up", "show me the stock"} {
		_, ok := e.Stock(NewQuery(q))
		assert.False(t, ok, q)
	}
}

func TestExtractor_News(t *testing.T) {
	e := NewExtractor(DefaultTables())

	tests := []struct {
		query    string
		expected domain.NewsRequest
	}{
		{"Show me top headlines", domain.NewsRequest{Kind: domain.NewsTopHeadlines, Country: "us"}},
		{"latest news", domain.NewsRequest{Kind: domain.NewsTopHeadlines, Country: "us"}},
		{"What's the latest news?", domain.NewsRequest{Kind: domain.NewsTopHeadlines, Country: "us"}},
		{"Get technology news", domain.NewsRequest{Kind: domain.NewsTopHeadlines, Country: "us", Category: "technology"}},
		{"any headlines on Sports?", domain.NewsRequest{Kind: domain.NewsTopHeadlines, Country: "us", Category: "sports"}},
		{"Search for news about climate change", domain.NewsRequest{Kind: domain.NewsSearch, Topic: "climate change"}},
		{"news about SpaceX launches!", domain.NewsRequest{Kind: domain.NewsSearch, Topic: "SpaceX launches"}},
		{"Latest news from Germany", domain.NewsRequest{Kind: domain.NewsByCountry, Country: "de", CountryName: "Germany"}},
		{"headlines from the UK", domain.NewsRequest{Kind: domain.NewsByCountry, Country: "gb", CountryName: "the UK"}},
		{"news from IN", domain.NewsRequest{Kind: domain.NewsByCountry, Country: "in", CountryName: "IN"}},
		{"news from Atlantis", domain.NewsRequest{Kind: domain.NewsByCountry, CountryName: "Atlantis"}},
		{"What are the top headlines today?", domain.NewsRequest{Kind: domain.NewsTopHeadlines, Country: "us"}},
		{"Can you show me the latest news?", domain.NewsRequest{Kind: domain.NewsTopHeadlines, Country: "us"}},
		{"Tell me the top headlines", domain.NewsRequest{Kind: domain.NewsTopHeadlines, Country: "us"}},
		{"any breaking news", domain.NewsRequest{Kind: domain.NewsTopHeadlines, Country: "us"}},
		{"headlines", domain.NewsRequest{Kind: domain.NewsTopHeadlines, Country: "us"}},
		{"Give me the news!", domain.NewsRequest{Kind: domain.NewsTopHeadlines, Country: "us"}},
		{"top headlines from Japan", domain.NewsRequest{Kind: domain.NewsByCountry, Country: "jp", CountryName: "Japan"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req, ok := e.News(NewQuery(tt.query))
			assert.True(t, ok)
			assert.Equal(t, tt.expected, req)
		})
	}
}

func TestExtractor_News_NoPattern(t *testing.T) {
	e := NewExtractor(DefaultTables())

	_, ok := e.News(NewQuery("what is the news"))
	assert.False(t, ok)
}
