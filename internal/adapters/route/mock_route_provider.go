package route

import (
	"context"
	"errors"

	"route-weather-service/internal/domain"
	"route-weather-service/internal/ports"
)

// MockRouteProvider returns a fixed route for any origin/destination pair.
type MockRouteProvider struct {
	Result ports.RouteResult
	Err    error
}

func (p *MockRouteProvider) GetRoute(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteResult, error) {
	if p.Err != nil {
		return ports.RouteResult{}, p.Err
	}
	if len(p.Result.Geometry) < 2 {
		return ports.RouteResult{}, errors.New("mock route has no geometry")
	}
	return p.Result, nil
}
