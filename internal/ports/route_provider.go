package ports

import (
	"context"

	"route-weather-service/internal/domain"
)

// RouteResult is a computed driving route: full geometry plus aggregate
// distance and duration. The geometry's first element is the origin and its
// last the destination; it always has at least two points.
type RouteResult struct {
	Geometry      []domain.Coordinates
	DistanceMiles float64
	DurationHours float64
}

// Contract for computing a driving route between two coordinates.
type RouteProvider interface {
	GetRoute(ctx context.Context, origin, destination domain.Coordinates) (RouteResult, error)
}
