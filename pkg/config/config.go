package config

import (
	"net"
	"strconv"
	"time"
)

type Config struct {
	App            AppConfig            `mapstructure:"app"`
	HTTP           HTTPConfig           `mapstructure:"http"`
	Weather        WeatherConfig        `mapstructure:"weather"`
	Stock          StockConfig          `mapstructure:"stock"`
	News           NewsConfig           `mapstructure:"news"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Cache          CacheConfig          `mapstructure:"cache"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
	OpenTelemetry  OpenTelemetryConfig  `mapstructure:"opentelemetry"`
	Prometheus     PrometheusConfig     `mapstructure:"prometheus"`
	Logging        LoggingConfig        `mapstructure:"logging"`
	CORS           CORSConfig           `mapstructure:"cors"`
	CLI            CLIConfig            `mapstructure:"cli"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type WeatherConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Units   string        `mapstructure:"units"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type StockConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	APIKey            string        `mapstructure:"api_key"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

type NewsConfig struct {
	// Provider is "newsapi" or "rss".
	Provider string        `mapstructure:"provider"`
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
	RSS      RSSConfig     `mapstructure:"rss"`
}

type RSSConfig struct {
	Feeds         []string            `mapstructure:"feeds"`
	CategoryFeeds map[string][]string `mapstructure:"category_feeds"`
}

type RedisConfig struct {
	URL       string `mapstructure:"url"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type CacheConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	WeatherTTL    time.Duration `mapstructure:"weather_ttl"`
	StockTTL      time.Duration `mapstructure:"stock_ttl"`
	NewsTTL       time.Duration `mapstructure:"news_ttl"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32        `mapstructure:"max_requests"`
	Interval         time.Duration `mapstructure:"interval"`
	Timeout          time.Duration `mapstructure:"timeout"`
	FailureThreshold uint32        `mapstructure:"failure_threshold"`
}

type OpenTelemetryConfig struct {
	Enabled     bool         `mapstructure:"enabled"`
	ServiceName string       `mapstructure:"service_name"`
	Jaeger      JaegerConfig `mapstructure:"jaeger"`
}

type JaegerConfig struct {
	Endpoint     string  `mapstructure:"endpoint"`
	SamplerParam float64 `mapstructure:"sampler_param"`
}

type PrometheusConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	MaxAge         int      `mapstructure:"max_age"`
}

type CLIConfig struct {
	HistoryFile string `mapstructure:"history_file"`
	WordWrap    int    `mapstructure:"word_wrap"`
}

// Address is the listen address for the HTTP server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}

// Validate reports settings that leave part of the bot unusable. None of them
// stop startup: the affected domain answers with a configuration error.
func (c *Config) Validate() []string {
	var warnings []string
	if c.Weather.APIKey == "" {
		warnings = append(warnings, "OPENWEATHER_API_KEY is not set; weather queries will fail")
	}
	if c.Stock.APIKey == "" {
		warnings = append(warnings, "ALPHA_VANTAGE_API_KEY is not set; stock queries will fail")
	}
	switch c.News.Provider {
	case NewsProviderRSS:
		if len(c.News.RSS.Feeds) == 0 {
			warnings = append(warnings, "news.rss.feeds is empty; news queries will fail")
		}
	default:
		if c.News.APIKey == "" {
			warnings = append(warnings, "NEWS_API_KEY is not set; news queries will fail")
		}
	}
	if c.Cache.Enabled && c.Redis.URL == "" {
		warnings = append(warnings, "cache enabled without REDIS_URL; using in-memory cache")
	}
	return warnings
}
