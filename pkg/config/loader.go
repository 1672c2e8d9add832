package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	NewsProviderNewsAPI = "newsapi"
	NewsProviderRSS     = "rss"
)

// Load reads configs/config.yaml (optional), .env (optional) and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	loadEnvFile(".env")
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.AddConfigPath("/app/configs")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Unprefixed names win over their APP_ forms.
	v.BindEnv("weather.api_key", "OPENWEATHER_API_KEY", "APP_WEATHER_API_KEY")
	v.BindEnv("stock.api_key", "ALPHA_VANTAGE_API_KEY", "APP_STOCK_API_KEY")
	v.BindEnv("news.api_key", "NEWS_API_KEY", "APP_NEWS_API_KEY")
	v.BindEnv("news.provider", "NEWS_PROVIDER", "APP_NEWS_PROVIDER")
	v.BindEnv("http.host", "HOST", "APP_HTTP_HOST")
	v.BindEnv("http.port", "PORT", "APP_HTTP_PORT")
	v.BindEnv("redis.url", "REDIS_URL", "APP_REDIS_URL")
	v.BindEnv("logging.level", "LOG_LEVEL", "APP_LOGGING_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.News.Provider = strings.ToLower(strings.TrimSpace(cfg.News.Provider))

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "mcp-chatbot")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8000)
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)

	v.SetDefault("weather.base_url", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("weather.api_key", "")
	v.SetDefault("weather.units", "metric")
	v.SetDefault("weather.timeout", 10*time.Second)

	v.SetDefault("stock.base_url", "https://www.alphavantage.co/query")
	v.SetDefault("stock.api_key", "")
	v.SetDefault("stock.timeout", 10*time.Second)
	v.SetDefault("stock.requests_per_minute", 5)

	v.SetDefault("news.provider", NewsProviderNewsAPI)
	v.SetDefault("news.base_url", "https://newsapi.org/v2")
	v.SetDefault("news.api_key", "")
	v.SetDefault("news.timeout", 10*time.Second)
	v.SetDefault("news.rss.feeds", []string{})

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.key_prefix", "mcp-chatbot:")

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.sweep_interval", time.Minute)
	v.SetDefault("cache.weather_ttl", 10*time.Minute)
	v.SetDefault("cache.stock_ttl", time.Minute)
	v.SetDefault("cache.news_ttl", 5*time.Minute)

	v.SetDefault("circuit_breaker.max_requests", 3)
	v.SetDefault("circuit_breaker.interval", 60*time.Second)
	v.SetDefault("circuit_breaker.timeout", 30*time.Second)
	v.SetDefault("circuit_breaker.failure_threshold", 5)

	v.SetDefault("opentelemetry.enabled", false)
	v.SetDefault("opentelemetry.service_name", "mcp-chatbot")
	v.SetDefault("opentelemetry.jaeger.endpoint", "http://localhost:14268/api/traces")
	v.SetDefault("opentelemetry.jaeger.sampler_param", 1.0)

	v.SetDefault("prometheus.enabled", true)
	v.SetDefault("prometheus.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("cors.enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Accept"})
	v.SetDefault("cors.max_age", 3600)

	v.SetDefault("cli.history_file", ".mcp_chatbot_history")
	v.SetDefault("cli.word_wrap", 80)
}

// loadEnvFile applies a .env file if one exists. Variables already present in
// the environment win.
func loadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}
