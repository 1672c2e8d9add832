// Package openweather is the OpenWeatherMap 2.5 client.
package openweather

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/seu-repo/mcp-chatbot/internal/adapter/external"
	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/infrastructure/circuitbreaker"
)

const (
	ProviderName = "OpenWeatherMap"

	slotsPerDay  = 8
	maxSlots     = 40
	successCode  = 200
	notFoundCode = 404
)

type Config struct {
	BaseURL           string
	APIKey            string
	Units             string
	Timeout           time.Duration
	RequestsPerMinute int
	Breaker           circuitbreaker.Settings
	Transport         http.RoundTripper
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL: "https://api.openweathermap.org/data/2.5",
		Units:   "metric",
		Timeout: 10 * time.Second,
		Breaker: circuitbreaker.DefaultSettings(),
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

// code accepts both the numeric and the quoted form OpenWeatherMap uses.
type code int

func (c *code) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*c = code(n)
	return nil
}

type mainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

type conditions []struct {
	Description string `json:"description"`
}

type wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

type currentResponse struct {
	Cod  code   `json:"cod"`
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Weather    conditions `json:"weather"`
	Main       mainBlock  `json:"main"`
	Wind       wind       `json:"wind"`
	Visibility int        `json:"visibility"`
	Dt         int64      `json:"dt"`
}

type forecastResponse struct {
	Cod  code `json:"cod"`
	List []struct {
		Dt      int64      `json:"dt"`
		Main    mainBlock  `json:"main"`
		Weather conditions `json:"weather"`
		Wind    wind       `json:"wind"`
	} `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

func (c *Client) CurrentWeather(ctx context.Context, city, country string) (*domain.CurrentWeather, error) {
	if c.config.APIKey == "" {
		return nil, domain.NewConfigurationError(ProviderName, "OpenWeatherMap API key not configured")
	}

	var resp currentResponse
	if err := c.http.GetJSON(ctx, c.config.BaseURL+"/weather", c.params(city, country), &resp); err != nil {
		return nil, c.wrap(err, city, "Failed to fetch weather data")
	}
	if resp.Cod != successCode {
		return nil, domain.NewUpstreamError(ProviderName, nil, "Weather data not found for %s", city)
	}

	return &domain.CurrentWeather{
		City:          resp.Name,
		Country:       resp.Sys.Country,
		Description:   describe(resp.Weather),
		Temperature:   temperature(resp.Main),
		Humidity:      resp.Main.Humidity,
		Pressure:      resp.Main.Pressure,
		WindSpeed:     round1(resp.Wind.Speed),
		WindDirection: resp.Wind.Deg,
		Visibility:    resp.Visibility,
		Sunrise:       resp.Sys.Sunrise,
		Sunset:        resp.Sys.Sunset,
		Timestamp:     resp.Dt,
	}, nil
}

// Forecast returns three-hour slots for the next days, capped at the 40 the
// free tier serves.
func (c *Client) Forecast(ctx context.Context, city, country string, days int) (*domain.Forecast, error) {
	if c.config.APIKey == "" {
		return nil, domain.NewConfigurationError(ProviderName, "OpenWeatherMap API key not configured")
	}
	if days < 1 {
		days = 1
	}
	slots := min(days*slotsPerDay, maxSlots)

	params := c.params(city, country)
	params.Set("cnt", strconv.Itoa(slots))

	var resp forecastResponse
	if err := c.http.GetJSON(ctx, c.config.BaseURL+"/forecast", params, &resp); err != nil {
		return nil, c.wrap(err, city, "Failed to fetch forecast data")
	}
	if resp.Cod != successCode {
		return nil, domain.NewUpstreamError(ProviderName, nil, "Forecast data not found for %s", city)
	}

	list := resp.List
	if len(list) > slots {
		list = list[:slots]
	}
	out := &domain.Forecast{
		City:      resp.City.Name,
		Country:   resp.City.Country,
		Forecasts: make([]domain.ForecastSlot, 0, len(list)),
	}
	for _, item := range list {
		out.Forecasts = append(out.Forecasts, domain.ForecastSlot{
			DateTime:    item.Dt,
			Description: describe(item.Weather),
			Temperature: temperature(item.Main),
			Humidity:    item.Main.Humidity,
			WindSpeed:   round1(item.Wind.Speed),
		})
	}
	return out, nil
}

func (c *Client) params(city, country string) url.Values {
	location := city
	if country != "" {
		location = city + "," + country
	}
	params := url.Values{}
	params.Set("q", location)
	params.Set("appid", c.config.APIKey)
	params.Set("units", c.config.Units)
	return params
}

func (c *Client) wrap(err error, city, prefix string) error {
	var statusErr *circuitbreaker.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == notFoundCode {
		return domain.NewUpstreamError(ProviderName, err, "Weather data not found for %s", city)
	}
	return external.Wrap(ProviderName, err, prefix)
}

func describe(c conditions) string {
	if len(c) == 0 {
		return ""
	}
	return cases.Title(language.English).String(c[0].Description)
}

func temperature(m mainBlock) domain.Temperature {
	return domain.Temperature{
		Current:   round1(m.Temp),
		FeelsLike: round1(m.FeelsLike),
		Min:       round1(m.TempMin),
		Max:       round1(m.TempMax),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
