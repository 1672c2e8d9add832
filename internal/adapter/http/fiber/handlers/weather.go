package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/ports"
)

const defaultForecastDays = 5

var (
	currentWeatherSchema = mustSchema(object([]string{"city"}, map[string]interface{}{
		"city":         str(map[string]interface{}{"minLength": 1}),
		"country_code": str(nil),
	}))
	forecastSchema = mustSchema(object([]string{"city"}, map[string]interface{}{
		"city":         str(map[string]interface{}{"minLength": 1}),
		"country_code": str(nil),
		"days":         integer(1, 5),
	}))
)

type WeatherHandler struct {
	weather ports.WeatherProvider
	log     *zap.Logger
}

func NewWeatherHandler(weather ports.WeatherProvider, log *zap.Logger) *WeatherHandler {
	return &WeatherHandler{weather: weather, log: log}
}

type WeatherRequest struct {
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
	Days        int    `json:"days"`
}

func (h *WeatherHandler) Current(c *fiber.Ctx) error {
	var req WeatherRequest
	if err := bind(c, currentWeatherSchema, &req); err != nil {
		return err
	}

	result, err := h.weather.CurrentWeather(c.UserContext(), strings.TrimSpace(req.City), req.CountryCode)
	if err != nil {
		h.log.Warn("Current weather lookup failed", zap.String("city", req.City), zap.Error(err))
	}
	return respond(c, result, err)
}

func (h *WeatherHandler) Forecast(c *fiber.Ctx) error {
	var req WeatherRequest
	if err := bind(c, forecastSchema, &req); err != nil {
		return err
	}
	if req.Days == 0 {
		req.Days = defaultForecastDays
	}

	result, err := h.weather.Forecast(c.UserContext(), strings.TrimSpace(req.City), req.CountryCode, req.Days)
	if err != nil {
		h.log.Warn("Forecast lookup failed", zap.String("city", req.City), zap.Error(err))
	}
	return respond(c, result, err)
}
