package services

import (
	"context"
	"fmt"
	"time"

	"route-weather-service/internal/domain"
	"route-weather-service/internal/ports"
)

// TripRequest carries the validated inputs of one planning request.
type TripRequest struct {
	StartAddress   string
	EndAddress     string
	DepartAt       time.Time
	IntervalMiles  float64
	AvgSpeedMph    float64
	WindWarningMph float64
}

// PlanTrip runs the planning pipeline: geocode both ends, compute the route,
// sample waypoints at mile intervals, estimate arrivals and annotate each
// waypoint with forecast weather.
//
// Geocoder and router failures abort the whole request; forecast failures
// are scoped to their waypoint (see AnnotateWeather).
func PlanTrip(
	ctx context.Context,
	req TripRequest,
	geocoder ports.Geocoder,
	router ports.RouteProvider,
	forecasts ports.ForecastProvider,
) (*domain.TripPlan, error) {
	origin, err := geocoder.Geocode(ctx, req.StartAddress)
	if err != nil {
		return nil, fmt.Errorf("plan trip: geocode start address %q: %w", req.StartAddress, err)
	}

	destination, err := geocoder.Geocode(ctx, req.EndAddress)
	if err != nil {
		return nil, fmt.Errorf("plan trip: geocode end address %q: %w", req.EndAddress, err)
	}

	route, err := router.GetRoute(ctx, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("plan trip: compute route: %w", err)
	}

	sampled, err := SampleWaypoints(route.Geometry, req.IntervalMiles, route.DistanceMiles)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	timed, err := EstimateArrivals(sampled, req.DepartAt, req.AvgSpeedMph)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	annotated := AnnotateWeather(ctx, timed, forecasts, req.WindWarningMph)

	durationHours := route.DurationHours
	eta := req.DepartAt.Add(time.Duration(durationHours * float64(time.Hour)))

	return &domain.TripPlan{
		StartAddress:  req.StartAddress,
		EndAddress:    req.EndAddress,
		DepartAt:      req.DepartAt,
		TotalMiles:    route.DistanceMiles,
		DurationHours: durationHours,
		ETA:           eta,
		Waypoints:     annotated,
	}, nil
}
