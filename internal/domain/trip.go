package domain

import "time"

// TripPlan is the planned drive between two geocoded addresses, annotated
// with forecast weather along the way. It is the output of the planning
// pipeline and is immutable once returned; it contains no side effects.
type TripPlan struct {
	StartAddress  string
	EndAddress    string
	DepartAt      time.Time
	TotalMiles    float64
	DurationHours float64
	ETA           time.Time
	Waypoints     []AnnotatedPoint
}
