package domain

type Temperature struct {
	Current   float64 `json:"current"`
	FeelsLike float64 `json:"feels_like"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

// CurrentWeather is the normalized current conditions for a city, in metric units.
type CurrentWeather struct {
	City          string      `json:"city"`
	Country       string      `json:"country"`
	Description   string      `json:"description"`
	Temperature   Temperature `json:"temperature"`
	Humidity      int         `json:"humidity"`
	Pressure      int         `json:"pressure"`
	WindSpeed     float64     `json:"wind_speed"`
	WindDirection int         `json:"wind_direction"`
	Visibility    int         `json:"visibility"`
	Sunrise       int64       `json:"sunrise"`
	Sunset        int64       `json:"sunset"`
	Timestamp     int64       `json:"timestamp"`
}

// ForecastSlot is one three-hour forecast step.
type ForecastSlot struct {
	DateTime    int64       `json:"datetime"`
	Description string      `json:"description"`
	Temperature Temperature `json:"temperature"`
	Humidity    int         `json:"humidity"`
	WindSpeed   float64     `json:"wind_speed"`
}

type Forecast struct {
	City      string         `json:"city"`
	Country   string         `json:"country"`
	Forecasts []ForecastSlot `json:"forecasts"`
}
