// Package rssnews serves headlines and article search from RSS/Atom feeds.
// It needs no API key, which makes it a drop-in replacement for NewsAPI.
package rssnews

import (
	"bytes"
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/adapter/external"
	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/infrastructure/circuitbreaker"
)

const (
	ProviderName          = "RSS"
	defaultPageSize       = 10
	defaultSearchPageSize = 5
)

type Config struct {
	// Feeds are used for plain headlines and for search.
	Feeds []string
	// CategoryFeeds override Feeds when a headline category is requested.
	CategoryFeeds map[string][]string
	Timeout       time.Duration
	Breaker       circuitbreaker.Settings
	Transport     http.RoundTripper
}

func DefaultConfig() *Config {
	return &Config{
		Timeout: 15 * time.Second,
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
	settings.Transport = config.Transport

	return &Client{
		http:      circuitbreaker.NewHTTPClient(settings, log),
		config:    config,
		countries: domain.NewCountryDirectory(),
		log:       log,
	}
}

// Categories lists the categories that have dedicated feeds, or the standard
// set when none are configured.
func (c *Client) Categories() []string {
	if len(c.config.CategoryFeeds) == 0 {
		return domain.NewsCategories()
	}
	out := make([]string, 0, len(c.config.CategoryFeeds))
	for name := range c.config.CategoryFeeds {
		out = append(out, strings.ToLower(name))
	}
	sort.Strings(out)
	return out
}

func (c *Client) Countries() []domain.Country {
	return c.countries.Countries()
}

type item struct {
	article   domain.Article
	published time.Time
}

// TopHeadlines returns the newest items across the configured feeds. Feeds
// are not country specific, so country is ignored.
func (c *Client) TopHeadlines(ctx context.Context, country, category string, pageSize int) (*domain.NewsResult, error) {
	feeds := c.config.Feeds
	if category != "" {
		if byCategory, ok := c.config.CategoryFeeds[strings.ToLower(category)]; ok && len(byCategory) > 0 {
			feeds = byCategory
		}
	}

	items, err := c.collect(ctx, feeds, "Failed to fetch headlines")
	if err != nil {
		return nil, err
	}
	return result(items, pageSize), nil
}

// SearchArticles keeps items whose title or description contains every word
// of query. Language and sort order are fixed by the feeds themselves.
func (c *Client) SearchArticles(ctx context.Context, query string, opts domain.SearchOptions) (*domain.NewsResult, error) {
	items, err := c.collect(ctx, c.config.Feeds, "Failed to search news")
	if err != nil {
		return nil, err
	}

	words := strings.Fields(strings.ToLower(query))
	matched := items[:0]
	for _, it := range items {
		text := strings.ToLower(it.article.Title + " " + it.article.Description)
		if containsAll(text, words) {
			matched = append(matched, it)
		}
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultSearchPageSize
	}
	return result(matched, opts.PageSize), nil
}

// collect reads every feed, skipping the ones that fail, and fails only
// when none could be read.
func (c *Client) collect(ctx context.Context, feeds []string, prefix string) ([]item, error) {
	if len(feeds) == 0 {
		return nil, domain.NewConfigurationError(ProviderName, "RSS feeds not configured")
	}

	parser := gofeed.NewParser()
	var items []item
	var lastErr error
	read := 0

	for _, feedURL := range feeds {
		body, err := c.http.Fetch(ctx, feedURL, nil)
		if err != nil {
			lastErr = err
			continue
		}
		feed, err := parser.Parse(bytes.NewReader(body))
		if err != nil {
			c.log.Warn("Failed to parse feed", zap.String("feed", feedURL), zap.Error(err))
			lastErr = &circuitbreaker.DecodeError{Err: err}
			continue
		}
		read++

		source := strings.TrimSpace(feed.Title)
		for _, it := range feed.Items {
			items = append(items, toItem(it, source))
		}
	}

	if read == 0 {
		return nil, external.Wrap(ProviderName, lastErr, prefix)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].published.After(items[j].published)
	})
	return items, nil
}

func toItem(it *gofeed.Item, source string) item {
	var published time.Time
	switch {
	case it.PublishedParsed != nil:
		published = *it.PublishedParsed
	case it.UpdatedParsed != nil:
		published = *it.UpdatedParsed
	}

	a := domain.Article{
		Title:       strings.TrimSpace(it.Title),
		Description: strings.TrimSpace(it.Description),
		URL:         strings.TrimSpace(it.Link),
		Content:     it.Content,
		Source:      domain.ArticleSource{Name: source},
	}
	if !published.IsZero() {
		a.PublishedAt = published.UTC().Format(time.RFC3339)
	} else {
		a.PublishedAt = it.Published
	}
	if it.Image != nil {
		a.URLToImage = it.Image.URL
	}
	return item{article: a, published: published}
}

func result(items []item, pageSize int) *domain.NewsResult {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	total := len(items)
	if len(items) > pageSize {
		items = items[:pageSize]
	}

	out := &domain.NewsResult{Articles: make([]domain.Article, 0, len(items)), TotalResults: total}
	for _, it := range items {
		out.Articles = append(out.Articles, it.article)
	}
	out.Count = len(out.Articles)
	return out
}

func containsAll(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}
