// Package format renders provider payloads as markdown for chat output.
// Every function is pure: the same input always yields the same string.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
)

const (
	// MaxItems caps every rendered list.
	MaxItems = 5
	// MaxDescription is the rune budget for an article description.
	MaxDescription = 100

	FailureMarker = "❌"
)

var printer = message.NewPrinter(language.English)

// Error prefixes msg with the failure marker.
func Error(msg string) string {
	return FailureMarker + " " + msg
}

func Weather(w *domain.CurrentWeather) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌤️ **Weather in %s, %s**\n\n", w.City, w.Country)
	fmt.Fprintf(&b, "**Current:** %.1f°C (feels like %.1f°C)\n", w.Temperature.Current, w.Temperature.FeelsLike)
	fmt.Fprintf(&b, "**Description:** %s\n", w.Description)
	fmt.Fprintf(&b, "**High:** %.1f°C, **Low:** %.1f°C\n", w.Temperature.Max, w.Temperature.Min)
	fmt.Fprintf(&b, "**Humidity:** %d%%\n", w.Humidity)
	fmt.Fprintf(&b, "**Wind:** %.1f m/s\n", w.WindSpeed)
	fmt.Fprintf(&b, "**Pressure:** %d hPa", w.Pressure)
	return b.String()
}

func Forecast(f *domain.Forecast) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 **Weather Forecast for %s, %s**\n\n", f.City, f.Country)
	for i, slot := range firstN(f.Forecasts) {
		fmt.Fprintf(&b, "**Day %d:** %s", i+1, slot.Description)
		if slot.DateTime > 0 {
			fmt.Fprintf(&b, " (%s)", time.Unix(slot.DateTime, 0).UTC().Format("Mon 02 Jan 15:04 UTC"))
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Temp: %.1f°C\n", slot.Temperature.Current)
		fmt.Fprintf(&b, "  Humidity: %d%%\n", slot.Humidity)
		fmt.Fprintf(&b, "  Wind: %.1f m/s\n\n", slot.WindSpeed)
	}
	return b.String()
}

// Trend is the indicator shown next to a quote; a flat day counts as up.
func Trend(change float64) string {
	if change >= 0 {
		return "📈"
	}
	return "📉"
}

func Quote(q *domain.StockQuote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s **%s Stock Information**\n\n", Trend(q.Change), q.Symbol)
	fmt.Fprintf(&b, "**Current Price:** $%.2f\n", q.Price)
	fmt.Fprintf(&b, "**Change:** $%.2f (%s)\n", q.Change, q.ChangePercent)
	fmt.Fprintf(&b, "**Open:** $%.2f\n", q.Open)
	fmt.Fprintf(&b, "**High:** $%.2f\n", q.High)
	fmt.Fprintf(&b, "**Low:** $%.2f\n", q.Low)
	fmt.Fprintf(&b, "**Volume:** %s\n", printer.Sprintf("%d", q.Volume))
	fmt.Fprintf(&b, "**Previous Close:** $%.2f", q.PreviousClose)
	return b.String()
}

func SymbolSearch(s *domain.SymbolSearch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔍 **Stock Search Results (%d found)**\n\n", s.Count)
	for _, m := range firstN(s.Results) {
		fmt.Fprintf(&b, "📊 **%s** - %s\n", m.Symbol, m.Name)
		fmt.Fprintf(&b, "   Type: %s\n", m.Type)
		fmt.Fprintf(&b, "   Region: %s\n", m.Region)
		fmt.Fprintf(&b, "   Currency: %s\n\n", m.Currency)
	}
	return b.String()
}

func Intraday(s *domain.IntradaySeries) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Intraday Data for %s (%s)**\n\n", s.Symbol, s.Interval)
	for i, p := range firstN(s.Data) {
		fmt.Fprintf(&b, "**Time %d:** %s\n", i+1, p.Timestamp)
		fmt.Fprintf(&b, "  Open: $%.2f\n", p.Open)
		fmt.Fprintf(&b, "  High: $%.2f\n", p.High)
		fmt.Fprintf(&b, "  Low: $%.2f\n", p.Low)
		fmt.Fprintf(&b, "  Close: $%.2f\n", p.Close)
		fmt.Fprintf(&b, "  Volume: %s\n\n", printer.Sprintf("%d", p.Volume))
	}
	return b.String()
}

func News(n *domain.NewsResult) string {
	return fmt.Sprintf("📰 **News (%d articles)**\n\n", n.Count) + articles(n.Articles)
}

func NewsSearch(n *domain.NewsResult, topic string) string {
	return fmt.Sprintf("🔍 **Search Results for '%s' (%d articles)**\n\n", topic, n.Count) + articles(n.Articles)
}

func articles(list []domain.Article) string {
	var b strings.Builder
	for i, a := range firstN(list) {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, a.Title)
		if a.Description != "" {
			fmt.Fprintf(&b, "   %s\n", Clip(a.Description, MaxDescription))
		}
		fmt.Fprintf(&b, "   Source: %s\n", a.Source.Name)
		fmt.Fprintf(&b, "   Published: %s\n\n", a.PublishedAt)
	}
	return b.String()
}

// Clip shortens s to at most n runes, marking the cut with an ellipsis.
func Clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

func Categories(categories []string) string {
	var b strings.Builder
	b.WriteString("🗂️ **News Categories**\n\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "• %s\n", c)
	}
	return b.String()
}

func Countries(countries []domain.Country) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌍 **News Countries (%d)**\n\n", len(countries))
	for _, c := range countries {
		fmt.Fprintf(&b, "• %s: %s\n", strings.ToUpper(c.Code), c.Name)
	}
	return b.String()
}

func firstN[T any](items []T) []T {
	if len(items) > MaxItems {
		return items[:MaxItems]
	}
	return items
}
