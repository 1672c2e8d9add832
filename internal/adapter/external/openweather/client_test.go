package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.APIKey = "test-key"
	return NewClient(cfg, zap.NewNop()), &hits
}

const tokyoPayload = `{
	"cod": 200,
	"name": "Tokyo",
	"sys": {"country": "JP", "sunrise": 1700000000, "sunset": 1700040000},
	"weather": [{"description": "clear sky"}],
	"main": {"temp": 21.46, "feels_like": 20.94, "temp_min": 19.01, "temp_max": 23.05, "humidity": 40, "pressure": 1012},
	"wind": {"speed": 3.61, "deg": 200},
	"visibility": 10000,
	"dt": 1700020000
}`

func TestCurrentWeather_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Paris,FR", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(tokyoPayload))
	})

	w, err := client.CurrentWeather(context.Background(), "Paris", "FR")
	require.NoError(t, err)

	assert.Equal(t, "Tokyo", w.City)
	assert.Equal(t, "JP", w.Country)
	assert.Equal(t, "Clear Sky", w.Description)
	assert.Equal(t, 21.5, w.Temperature.Current)
	assert.Equal(t, 20.9, w.Temperature.FeelsLike)
	assert.Equal(t, 19.0, w.Temperature.Min)
	assert.Equal(t, 23.1, w.Temperature.Max)
	assert.Equal(t, 3.6, w.WindSpeed)
	assert.Equal(t, 200, w.WindDirection)
	assert.Equal(t, 10000, w.Visibility)
}

func TestCurrentWeather_MissingKeyMakesNoRequest(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	client.config.APIKey = ""

	_, err := client.CurrentWeather(context.Background(), "Tokyo", "")

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
	assert.Equal(t, "OpenWeatherMap API key not configured", err.Error())
	assert.Zero(t, atomic.LoadInt32(hits))
}

func TestCurrentWeather_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})

	_, err := client.CurrentWeather(context.Background(), "Atlantis", "")

	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
	assert.Equal(t, "Weather data not found for Atlantis", err.Error())
}

func TestCurrentWeather_CodInBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cod":"401"}`))
	})

	_, err := client.CurrentWeather(context.Background(), "Tokyo", "")

	require.Error(t, err)
	assert.Equal(t, "Weather data not found for Tokyo", err.Error())
}

func TestCurrentWeather_Unauthorized(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	})

	_, err := client.CurrentWeather(context.Background(), "Tokyo", "")

	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
	assert.Equal(t, "Failed to fetch weather data: Invalid API key", err.Error())
	assert.NotContains(t, err.Error(), "test-key")
}

func TestCurrentWeather_BadPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>oops</html>`))
	})

	_, err := client.CurrentWeather(context.Background(), "Tokyo", "")

	require.Error(t, err)
	assert.Equal(t, "Failed to fetch weather data: unexpected response format", err.Error())
}

func TestCurrentWeather_TransportFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseURL = "http://127.0.0.1:1"
	cfg.APIKey = "secret"
	client := NewClient(cfg, zap.NewNop())

	_, err := client.CurrentWeather(context.Background(), "Tokyo", "")

	require.Error(t, err)
	assert.True(t, domain.IsTransportError(err))
	assert.NotContains(t, err.Error(), "secret")
}

func TestForecast_CapsSlots(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "40", r.URL.Query().Get("cnt"))
		w.Write([]byte(`{
			"cod": "200",
			"city": {"name": "Mumbai", "country": "IN"},
			"list": [
				{"dt": 1700000000, "main": {"temp": 30.04, "humidity": 70}, "weather": [{"description": "haze"}], "wind": {"speed": 2.04}},
				{"dt": 1700010800, "main": {"temp": 29.5, "humidity": 72}, "weather": [], "wind": {"speed": 1.5}}
			]
		}`))
	})

	f, err := client.Forecast(context.Background(), "Mumbai", "", 9)
	require.NoError(t, err)

	assert.Equal(t, "Mumbai", f.City)
	assert.Equal(t, "IN", f.Country)
	require.Len(t, f.Forecasts, 2)
	assert.Equal(t, "Haze", f.Forecasts[0].Description)
	assert.Equal(t, 30.0, f.Forecasts[0].Temperature.Current)
	assert.Equal(t, 2.0, f.Forecasts[0].WindSpeed)
	assert.Empty(t, f.Forecasts[1].Description)
}

func TestForecast_DaysToSlots(t *testing.T) {
	tests := []struct {
		days int
		cnt  string
	}{
		{0, "8"},
		{1, "8"},
		{3, "24"},
		{5, "40"},
	}

	for _, tt := range tests {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, tt.cnt, r.URL.Query().Get("cnt"))
			w.Write([]byte(`{"cod":"200","city":{"name":"X"},"list":[]}`))
		})
		_, err := client.Forecast(context.Background(), "X", "", tt.days)
		require.NoError(t, err)
	}
}
