// Package newsapi is the NewsAPI.org v2 client.
package newsapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/adapter/external"
	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/infrastructure/circuitbreaker"
)

const (
	ProviderName = "NewsAPI"

	defaultPageSize       = 10
	defaultSearchPageSize = 5
	maxPageSize           = 100
	defaultLanguage       = "en"
	defaultSortBy         = "publishedAt"
)

type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerMinute int
	Breaker           circuitbreaker.Settings
	Transport         http.RoundTripper
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL: "https://newsapi.org/v2",
		Timeout: 10 * time.Second,
		Breaker: circuitbreaker.DefaultSettings(),
	}
}

type Client struct {
	http      *circuitbreaker.HTTPClient
	config    *Config
	countries *domain.CountryDirectory
	log       *zap.Logger
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
		http:      circuitbreaker.NewHTTPClient(settings, log),
		config:    config,
		countries: domain.NewCountryDirectory(),
		log:       log,
	}
}

// Categories lists the categories accepted by TopHeadlines.
func (c *Client) Categories() []string {
	return domain.NewsCategories()
}

// Countries lists the countries accepted by TopHeadlines.
func (c *Client) Countries() []domain.Country {
	return c.countries.Countries()
}

type articlesResponse struct {
	Status       string `json:"status"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
		Content     string `json:"content"`
	} `json:"articles"`
}

func (c *Client) TopHeadlines(ctx context.Context, country, category string, pageSize int) (*domain.NewsResult, error) {
	if c.config.APIKey == "" {
		return nil, c.missingKey()
	}

	params := url.Values{}
	params.Set("country", strings.ToLower(country))
	params.Set("pageSize", strconv.Itoa(clampPageSize(pageSize)))
	if category != "" {
		params.Set("category", strings.ToLower(category))
	}
	params.Set("apiKey", c.config.APIKey)

	return c.fetch(ctx, "/top-headlines", params, "Failed to fetch headlines")
}

func (c *Client) SearchArticles(ctx context.Context, query string, opts domain.SearchOptions) (*domain.NewsResult, error) {
	if c.config.APIKey == "" {
		return nil, c.missingKey()
	}
	if opts.Language == "" {
		opts.Language = defaultLanguage
	}
	if opts.SortBy == "" {
		opts.SortBy = defaultSortBy
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultSearchPageSize
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("language", opts.Language)
	params.Set("sortBy", opts.SortBy)
	params.Set("pageSize", strconv.Itoa(clampPageSize(opts.PageSize)))
	params.Set("apiKey", c.config.APIKey)

	return c.fetch(ctx, "/everything", params, "Failed to search news")
}

func (c *Client) fetch(ctx context.Context, path string, params url.Values, prefix string) (*domain.NewsResult, error) {
	var resp articlesResponse
	if err := c.http.GetJSON(ctx, c.config.BaseURL+path, params, &resp); err != nil {
		return nil, external.Wrap(ProviderName, err, prefix)
	}
	if resp.Status != "ok" {
		msg := resp.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return nil, domain.NewUpstreamError(ProviderName, nil, "%s: %s", prefix, msg)
	}

	out := &domain.NewsResult{
		Articles:     make([]domain.Article, 0, len(resp.Articles)),
		TotalResults: resp.TotalResults,
	}
	for _, a := range resp.Articles {
		out.Articles = append(out.Articles, domain.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			URLToImage:  a.URLToImage,
			PublishedAt: a.PublishedAt,
			Content:     a.Content,
			Source:      domain.ArticleSource{ID: a.Source.ID, Name: a.Source.Name},
		})
	}
	out.Count = len(out.Articles)
	return out, nil
}

func (c *Client) missingKey() error {
	return domain.NewConfigurationError(ProviderName, "NewsAPI key not configured")
}

func clampPageSize(n int) int {
	switch {
	case n <= 0:
		return defaultPageSize
	case n > maxPageSize:
		return maxPageSize
	default:
		return n
	}
}
