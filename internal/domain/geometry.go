package domain

import "math"

const earthRadiusMiles = 3958.8

// GreatCircleMiles returns the haversine distance between two points in miles.
func GreatCircleMiles(a, b Coordinates) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	deltaPhi := (b.Lat - a.Lat) * math.Pi / 180
	deltaLambda := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)

	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}

// Interpolate returns the point at the given fraction between a and b,
// interpolating linearly in degree space on each axis. Segments along a
// driving route are short enough that geodesic interpolation is unnecessary.
// Fractions at or beyond the endpoints return the endpoints exactly.
func Interpolate(a, b Coordinates, fraction float64) Coordinates {
	if fraction <= 0 {
		return a
	}
	if fraction >= 1 {
		return b
	}
	return Coordinates{
		Lon: a.Lon + (b.Lon-a.Lon)*fraction,
		Lat: a.Lat + (b.Lat-a.Lat)*fraction,
	}
}
