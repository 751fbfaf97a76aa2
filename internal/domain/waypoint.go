package domain

import "time"

// SampledPoint is a point emitted by the route sampler at a fixed mile
// interval (or the destination). DistanceMiles is cumulative along the
// route and non-decreasing across the sampled sequence.
type SampledPoint struct {
	Position      Coordinates
	DistanceMiles float64
	Label         string
}

// TimedPoint is a sampled point with an estimated wall-clock arrival time
// under the constant-speed model.
type TimedPoint struct {
	SampledPoint
	ArriveAt      time.Time
	ArriveDisplay string
}

// AnnotatedPoint is the pipeline's final per-waypoint output: position,
// arrival estimate and a weather record that is always present, either
// populated or explicitly unavailable.
type AnnotatedPoint struct {
	TimedPoint
	Weather WeatherRecord
}
