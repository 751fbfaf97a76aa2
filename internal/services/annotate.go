package services

import (
	"context"
	"fmt"
	"sync"

	"route-weather-service/internal/domain"
	"route-weather-service/internal/forecast"
	"route-weather-service/internal/ports"
)

// forecastConcurrency bounds simultaneous forecast retrievals to limit load
// on the upstream service.
const forecastConcurrency = 6

// AnnotateWeather attaches a weather record to every waypoint. Retrievals
// run concurrently across a bounded pool; each goroutine owns exactly one
// output slot, so results need no locking. A failed retrieval yields an
// unavailable record for its own waypoint only and never affects siblings;
// the call returns once every waypoint has been resolved.
func AnnotateWeather(
	ctx context.Context,
	points []domain.TimedPoint,
	provider ports.ForecastProvider,
	windWarnMph float64,
) []domain.AnnotatedPoint {
	out := make([]domain.AnnotatedPoint, len(points))

	sem := make(chan struct{}, forecastConcurrency)
	var wg sync.WaitGroup

	for i, p := range points {
		wg.Add(1)
		go func(i int, p domain.TimedPoint) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			out[i] = domain.AnnotatedPoint{
				TimedPoint: p,
				Weather:    fetchOne(ctx, p, provider, windWarnMph),
			}
		}(i, p)
	}

	wg.Wait()
	return out
}

// fetchOne resolves the forecast for a single waypoint. Every failure mode
// maps to an unavailable record with a reason; nothing here aborts the trip.
func fetchOne(
	ctx context.Context,
	p domain.TimedPoint,
	provider ports.ForecastProvider,
	windWarnMph float64,
) domain.WeatherRecord {
	series, err := provider.HourlyForecast(ctx, p.Position)
	if err != nil {
		return domain.UnavailableWeather(fmt.Sprintf("forecast request failed: %v", err))
	}

	if len(series.Times) == 0 {
		return domain.UnavailableWeather("empty time series from forecast source")
	}

	idx, ok := forecast.NearestHourIndex(series.Times, p.ArriveAt)
	if !ok {
		return domain.UnavailableWeather(fmt.Sprintf(
			"arrival time %s is outside the forecast window",
			p.ArriveAt.UTC().Format("2006-01-02T15:04:05Z"),
		))
	}

	return forecast.BuildRecord(series, idx, windWarnMph)
}
