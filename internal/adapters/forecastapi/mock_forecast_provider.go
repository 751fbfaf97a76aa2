package forecastapi

import (
	"context"
	"sync"

	"route-weather-service/internal/domain"
	"route-weather-service/internal/forecast"
)

// MockForecastProvider serves a fixed series or error for every position.
// Safe for concurrent use; lookups may arrive from the annotation fan-out.
type MockForecastProvider struct {
	Series forecast.HourlySeries
	Err    error

	// PerCall overrides Series/Err when set; invoked once per lookup.
	PerCall func(at domain.Coordinates) (forecast.HourlySeries, error)

	mu    sync.Mutex
	calls int
}

func (p *MockForecastProvider) HourlyForecast(ctx context.Context, at domain.Coordinates) (forecast.HourlySeries, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.PerCall != nil {
		return p.PerCall(at)
	}
	if p.Err != nil {
		return forecast.HourlySeries{}, p.Err
	}
	return p.Series, nil
}

func (p *MockForecastProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
