package services

import (
	"errors"
	"fmt"
	"math"

	"route-weather-service/internal/domain"
)

// SampleWaypoints walks the route geometry and emits a waypoint every
// intervalMiles miles, then unconditionally appends the destination as a
// final waypoint. The destination is not deduplicated against the last
// interval sample, so the two may sit very close together near the end.
//
// Waypoints are ordered by increasing distance along the route; the final
// waypoint's distance equals totalMiles.
func SampleWaypoints(
	geometry []domain.Coordinates,
	intervalMiles float64,
	totalMiles float64,
) ([]domain.SampledPoint, error) {
	if intervalMiles <= 0 {
		return nil, fmt.Errorf("sample waypoints: interval must be positive, got %v", intervalMiles)
	}
	if len(geometry) < 2 {
		return nil, errors.New("sample waypoints: route geometry needs at least two points")
	}

	waypoints := []domain.SampledPoint{}

	accumulated := 0.0
	nextTarget := intervalMiles
	index := 1

	prev := geometry[0]
	for _, cur := range geometry[1:] {
		segLen := domain.GreatCircleMiles(prev, cur)

		// Zero-length segments (duplicate consecutive points) carry no
		// targets and must not divide by zero.
		for segLen > 0 && nextTarget <= accumulated+segLen {
			frac := (nextTarget - accumulated) / segLen
			waypoints = append(waypoints, domain.SampledPoint{
				Position:      domain.Interpolate(prev, cur, frac),
				DistanceMiles: roundMile(nextTarget),
				Label:         fmt.Sprintf("Checkpoint %d (Mile %.0f)", index, nextTarget),
			})
			index++
			nextTarget += intervalMiles
		}

		accumulated += segLen
		prev = cur
	}

	waypoints = append(waypoints, domain.SampledPoint{
		Position:      geometry[len(geometry)-1],
		DistanceMiles: roundMile(totalMiles),
		Label:         fmt.Sprintf("Destination (Mile %.0f)", totalMiles),
	})

	return waypoints, nil
}

func roundMile(v float64) float64 {
	return math.Round(v*10) / 10
}
