package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
)

func TestWeather(t *testing.T) {
	w := &domain.CurrentWeather{
		City:        "Tokyo",
		Country:     "JP",
		Description: "Clear Sky",
		Temperature: domain.Temperature{Current: 21.46, FeelsLike: 20.9, Min: 19, Max: 23.05},
		Humidity:    40,
		Pressure:    1012,
		WindSpeed:   3.6,
	}

	expected := "🌤️ **Weather in Tokyo, JP**\n\n" +
		"**Current:** 21.5°C (feels like 20.9°C)\n" +
		"**Description:** Clear Sky\n" +
		"**High:** 23.1°C, **Low:** 19.0°C\n" +
		"**Humidity:** 40%\n" +
		"**Wind:** 3.6 m/s\n" +
		"**Pressure:** 1012 hPa"
	assert.Equal(t, expected, Weather(w))
}

func TestForecast_CapsDays(t *testing.T) {
	f := &domain.Forecast{City: "Mumbai", Country: "IN"}
	for i := 0; i < 8; i++ {
		f.Forecasts = append(f.Forecasts, domain.ForecastSlot{
			DateTime:    1700000000 + int64(i)*10800,
			Description: "Haze",
			Temperature: domain.Temperature{Current: 30},
			Humidity:    70,
			WindSpeed:   2,
		})
	}

	out := Forecast(f)
	assert.True(t, strings.HasPrefix(out, "📅 **Weather Forecast for Mumbai, IN**"))
	assert.Equal(t, 5, strings.Count(out, "**Day "))
	assert.Contains(t, out, "**Day 1:** Haze (Tue 14 Nov 22:13 UTC)")
	assert.NotContains(t, out, "**Day 6:**")
}

func TestQuote(t *testing.T) {
	q := &domain.StockQuote{
		Symbol:        "AAPL",
		Price:         189.5,
		Change:        -1.234,
		ChangePercent: "-0.65%",
		Open:          190,
		High:          191.2,
		Low:           188.75,
		Volume:        52345678,
		PreviousClose: 190.734,
	}

	out := Quote(q)
	assert.True(t, strings.HasPrefix(out, "📉 **AAPL Stock Information**"))
	assert.Contains(t, out, "**Current Price:** $189.50\n")
	assert.Contains(t, out, "**Change:** $-1.23 (-0.65%)\n")
	assert.Contains(t, out, "**Volume:** 52,345,678\n")
	assert.True(t, strings.HasSuffix(out, "**Previous Close:** $190.73"))
}

func TestTrend(t *testing.T) {
	assert.Equal(t, "📈", Trend(0))
	assert.Equal(t, "📈", Trend(2.5))
	assert.Equal(t, "📉", Trend(-0.01))
}

func TestSymbolSearch(t *testing.T) {
	s := &domain.SymbolSearch{Count: 7}
	for i := 0; i < 7; i++ {
		s.Results = append(s.Results, domain.SymbolMatch{Symbol: fmt.Sprintf("SYM%d", i), Name: "Co", Type: "Equity", Region: "United States", Currency: "USD"})
	}

	out := SymbolSearch(s)
	assert.True(t, strings.HasPrefix(out, "🔍 **Stock Search Results (7 found)**"))
	assert.Equal(t, 5, strings.Count(out, "📊 **SYM"))
}

func TestIntraday(t *testing.T) {
	s := &domain.IntradaySeries{
		Symbol:   "IBM",
		Interval: "5min",
		Data: []domain.IntradayPoint{
			{Timestamp: "2024-01-05 16:00:00", Open: 160.1, High: 160.5, Low: 159.9, Close: 160.25, Volume: 12000},
		},
	}

	out := Intraday(s)
	assert.Contains(t, out, "📊 **Intraday Data for IBM (5min)**")
	assert.Contains(t, out, "**Time 1:** 2024-01-05 16:00:00\n")
	assert.Contains(t, out, "  Close: $160.25\n")
	assert.Contains(t, out, "  Volume: 12,000\n")
}

func TestNews_Truncation(t *testing.T) {
	long := strings.Repeat("a", 150)
	n := &domain.NewsResult{TotalResults: 40}
	for i := 0; i < 12; i++ {
		n.Articles = append(n.Articles, domain.Article{
			Title:       fmt.Sprintf("Story %d", i+1),
			Description: long,
			Source:      domain.ArticleSource{Name: "Wire"},
			PublishedAt: "2024-01-05T10:00:00Z",
		})
	}
	n.Count = len(n.Articles)

	out := News(n)
	assert.True(t, strings.HasPrefix(out, "📰 **News (12 articles)**"))
	assert.Equal(t, 5, strings.Count(out, "Source: Wire"))
	assert.Equal(t, 5, strings.Count(out, "   "+strings.Repeat("a", 100)+"...\n"))
	assert.NotContains(t, out, "Story 6")
}

func TestNewsSearch(t *testing.T) {
	n := &domain.NewsResult{
		Articles: []domain.Article{{Title: "Rates hold", Source: domain.ArticleSource{Name: "Wire"}}},
		Count:    1,
	}

	out := NewsSearch(n, "interest rates")
	assert.True(t, strings.HasPrefix(out, "🔍 **Search Results for 'interest rates' (1 articles)**"))
	assert.Contains(t, out, "1. **Rates hold**\n   Source: Wire\n")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", Clip("short", 10))
	assert.Equal(t, "exactly10!", Clip("exactly10!", 10))
	assert.Equal(t, "abc...", Clip("abcdef", 3))
	assert.Equal(t, "ção...", Clip("çãoção", 3))
}

func TestFormattingIsIdempotent(t *testing.T) {
	n := &domain.NewsResult{
		Articles: []domain.Article{{Title: "A", Description: strings.Repeat("x", 120)}},
		Count:    1,
	}
	q := &domain.StockQuote{Symbol: "MSFT", Price: 410, Volume: 1000}

	assert.Equal(t, News(n), News(n))
	assert.Equal(t, Quote(q), Quote(q))
}

func TestErrorAndListings(t *testing.T) {
	assert.Equal(t, "❌ Sorry", Error("Sorry"))

	cats := Categories([]string{"business", "sports"})
	assert.Equal(t, "🗂️ **News Categories**\n\n• business\n• sports\n", cats)

	countries := Countries([]domain.Country{{Code: "de", Name: "Germany"}})
	assert.Equal(t, "🌍 **News Countries (1)**\n\n• DE: Germany\n", countries)
}
