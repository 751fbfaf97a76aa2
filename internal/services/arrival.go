package services

import (
	"fmt"
	"time"

	"route-weather-service/internal/domain"
)

// arrivalDisplayLayout renders arrival times for presentation,
// e.g. "Mon Jan 1, 08:50 AM".
const arrivalDisplayLayout = "Mon Jan 2, 03:04 PM"

// EstimateArrivals computes the wall-clock arrival time at each waypoint
// under a constant average speed. Distances are already cumulative, so each
// arrival is computed independently; input ordering is preserved and arrival
// times are non-decreasing as a consequence of non-decreasing distance.
func EstimateArrivals(
	points []domain.SampledPoint,
	departAt time.Time,
	avgSpeedMph float64,
) ([]domain.TimedPoint, error) {
	if avgSpeedMph <= 0 {
		return nil, fmt.Errorf("estimate arrivals: average speed must be positive, got %v", avgSpeedMph)
	}

	out := make([]domain.TimedPoint, 0, len(points))
	for _, p := range points {
		elapsed := time.Duration(p.DistanceMiles / avgSpeedMph * float64(time.Hour))
		arrive := departAt.Add(elapsed)

		out = append(out, domain.TimedPoint{
			SampledPoint:  p,
			ArriveAt:      arrive,
			ArriveDisplay: arrive.Format(arrivalDisplayLayout),
		})
	}

	return out, nil
}
