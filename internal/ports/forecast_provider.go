package ports

import (
	"context"

	"route-weather-service/internal/domain"
	"route-weather-service/internal/forecast"
)

// Contract for retrieving an hourly forecast series for a position.
type ForecastProvider interface {
	HourlyForecast(ctx context.Context, at domain.Coordinates) (forecast.HourlySeries, error)
}
