package chatbot

import (
	"context"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/service/format"
	"github.com/seu-repo/mcp-chatbot/internal/service/nlu"
)

func (c *Chatbot) handleWeather(ctx context.Context, q nlu.Query) reply {
	req, ok := c.extractor.Weather(q)
	if !ok {
		return reply{status: noSlots}
	}

	if req.Forecast {
		forecast, err := c.weather.Forecast(ctx, req.City, req.Country, req.Days)
		if err != nil {
			return failure("Sorry, I couldn't get forecast for %s. %s", req.City, domain.ErrorMessage(err))
		}
		return answer(format.Forecast(forecast))
	}

	current, err := c.weather.CurrentWeather(ctx, req.City, req.Country)
	if err != nil {
		return failure("Sorry, I couldn't get weather information for %s. %s", req.City, domain.ErrorMessage(err))
	}
	return answer(format.Weather(current))
}
