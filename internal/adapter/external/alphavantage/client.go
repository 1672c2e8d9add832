// Package alphavantage is the Alpha Vantage stock API client.
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/adapter/external"
	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/infrastructure/circuitbreaker"
)

const (
	ProviderName = "Alpha Vantage"

	DefaultInterval = "5min"
	intradayPoints  = 20
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RequestsPerMinute defaults to the free tier allowance.
	RequestsPerMinute int
	Breaker           circuitbreaker.Settings
	Transport         http.RoundTripper
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:           "https://www.alphavantage.co/query",
		Timeout:           10 * time.Second,
		RequestsPerMinute: 5,
		Breaker:           circuitbreaker.DefaultSettings(),
	}
}

type Client struct {
	http   *circuitbreaker.HTTPClient
	config *Config
	log    *zap.Logger
}

func NewClient(config *Config, log *zap.Logger) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	settings := circuitbreaker.DefaultHTTPClientSettings(ProviderName)
	settings.Timeout = config.Timeout
	settings.Breaker = config.Breaker
	settings.RequestsPerMinute = config.RequestsPerMinute
	settings.Transport = config.Transport

	return &Client{
		http:   circuitbreaker.NewHTTPClient(settings, log),
		config: config,
		log:    log,
	}
}

// notice carries the fields Alpha Vantage uses instead of HTTP errors.
type notice struct {
	Note         string `json:"Note"`
	Information  string `json:"Information"`
	ErrorMessage string `json:"Error Message"`
}

func (n notice) message() string {
	switch {
	case n.ErrorMessage != "":
		return n.ErrorMessage
	case n.Note != "":
		return n.Note
	default:
		return n.Information
	}
}

type quoteResponse struct {
	notice
	GlobalQuote map[string]string `json:"Global Quote"`
}

type searchResponse struct {
	notice
	BestMatches []map[string]string `json:"bestMatches"`
}

func (c *Client) Quote(ctx context.Context, symbol string) (*domain.StockQuote, error) {
	if c.config.APIKey == "" {
		return nil, c.missingKey()
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	var resp quoteResponse
	if err := c.http.GetJSON(ctx, c.config.BaseURL, c.params("GLOBAL_QUOTE", "symbol", symbol), &resp); err != nil {
		return nil, external.Wrap(ProviderName, err, "Failed to fetch stock data")
	}
	if msg := resp.message(); msg != "" {
		return nil, domain.NewUpstreamError(ProviderName, nil, "Failed to fetch stock data: %s", msg)
	}
	if len(resp.GlobalQuote) == 0 {
		return nil, domain.NewUpstreamError(ProviderName, nil, "Stock data not found for %s", symbol)
	}

	q := resp.GlobalQuote
	p := fieldParser{}
	quote := &domain.StockQuote{
		Symbol:           q["01. symbol"],
		Open:             p.float(q["02. open"]),
		High:             p.float(q["03. high"]),
		Low:              p.float(q["04. low"]),
		Price:            p.float(q["05. price"]),
		Volume:           p.integer(q["06. volume"]),
		LatestTradingDay: q["07. latest trading day"],
		PreviousClose:    p.float(q["08. previous close"]),
		Change:           p.float(q["09. change"]),
		ChangePercent:    q["10. change percent"],
	}
	if p.err != nil {
		return nil, domain.NewUpstreamError(ProviderName, p.err, "Failed to fetch stock data: unexpected quote format")
	}
	return quote, nil
}

// SearchSymbols returns the best matches for a company name or partial ticker.
// An empty match list is a valid answer, not an error.
func (c *Client) SearchSymbols(ctx context.Context, keywords string) (*domain.SymbolSearch, error) {
	if c.config.APIKey == "" {
		return nil, c.missingKey()
	}

	var resp searchResponse
	if err := c.http.GetJSON(ctx, c.config.BaseURL, c.params("SYMBOL_SEARCH", "keywords", keywords), &resp); err != nil {
		return nil, external.Wrap(ProviderName, err, "Failed to search symbols")
	}
	if msg := resp.message(); msg != "" {
		return nil, domain.NewUpstreamError(ProviderName, nil, "Failed to search symbols: %s", msg)
	}
	if resp.BestMatches == nil {
		return nil, domain.NewUpstreamError(ProviderName, nil, "No search results found")
	}

	results := make([]domain.SymbolMatch, 0, len(resp.BestMatches))
	for _, m := range resp.BestMatches {
		results = append(results, domain.SymbolMatch{
			Symbol:      m["1. symbol"],
			Name:        m["2. name"],
			Type:        m["3. type"],
			Region:      m["4. region"],
			MarketOpen:  m["5. marketOpen"],
			MarketClose: m["6. marketClose"],
			Timezone:    m["7. timezone"],
			Currency:    m["8. currency"],
		})
	}
	return &domain.SymbolSearch{Results: results, Count: len(results)}, nil
}

// Intraday returns the latest points of the series, newest first.
func (c *Client) Intraday(ctx context.Context, symbol, interval string) (*domain.IntradaySeries, error) {
	if c.config.APIKey == "" {
		return nil, c.missingKey()
	}
	if interval == "" {
		interval = DefaultInterval
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	params := c.params("TIME_SERIES_INTRADAY", "symbol", symbol)
	params.Set("interval", interval)

	var raw map[string]json.RawMessage
	if err := c.http.GetJSON(ctx, c.config.BaseURL, params, &raw); err != nil {
		return nil, external.Wrap(ProviderName, err, "Failed to fetch intraday data")
	}

	var n notice
	for key, target := range map[string]*string{"Note": &n.Note, "Information": &n.Information, "Error Message": &n.ErrorMessage} {
		if v, ok := raw[key]; ok {
			_ = json.Unmarshal(v, target)
		}
	}
	if msg := n.message(); msg != "" {
		return nil, domain.NewUpstreamError(ProviderName, nil, "Failed to fetch intraday data: %s", msg)
	}

	seriesRaw, ok := raw[fmt.Sprintf("Time Series (%s)", interval)]
	if !ok {
		return nil, domain.NewUpstreamError(ProviderName, nil, "Intraday data not found for %s", symbol)
	}
	var series map[string]map[string]string
	if err := json.Unmarshal(seriesRaw, &series); err != nil {
		return nil, domain.NewUpstreamError(ProviderName, err, "Failed to fetch intraday data: unexpected response format")
	}

	timestamps := make([]string, 0, len(series))
	for ts := range series {
		timestamps = append(timestamps, ts)
	}
	// "2006-01-02 15:04:05" sorts lexically.
	sort.Sort(sort.Reverse(sort.StringSlice(timestamps)))
	if len(timestamps) > intradayPoints {
		timestamps = timestamps[:intradayPoints]
	}

	p := fieldParser{}
	out := &domain.IntradaySeries{Symbol: symbol, Interval: interval, Data: make([]domain.IntradayPoint, 0, len(timestamps))}
	for _, ts := range timestamps {
		point := series[ts]
		out.Data = append(out.Data, domain.IntradayPoint{
			Timestamp: ts,
			Open:      p.float(point["1. open"]),
			High:      p.float(point["2. high"]),
			Low:       p.float(point["3. low"]),
			Close:     p.float(point["4. close"]),
			Volume:    p.integer(point["5. volume"]),
		})
	}
	if p.err != nil {
		return nil, domain.NewUpstreamError(ProviderName, p.err, "Failed to fetch intraday data: unexpected response format")
	}
	return out, nil
}

func (c *Client) params(function, key, value string) url.Values {
	params := url.Values{}
	params.Set("function", function)
	params.Set(key, value)
	params.Set("apikey", c.config.APIKey)
	return params
}

func (c *Client) missingKey() error {
	return domain.NewConfigurationError(ProviderName, "Alpha Vantage API key not configured")
}

// fieldParser keeps the first conversion error so a record can be parsed
// field by field and checked once.
type fieldParser struct {
	err error
}

func (p *fieldParser) float(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("parse %q: %w", s, err)
	}
	return v
}

func (p *fieldParser) integer(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("parse %q: %w", s, err)
	}
	return v
}
