package domain

import (
	"math"
	"testing"
)

func TestGreatCircleMilesCoincident(t *testing.T) {
	points := []Coordinates{
		{Lon: 0, Lat: 0},
		{Lon: -112.074, Lat: 33.4484},
		{Lon: 179.9, Lat: -45.3},
	}

	for _, p := range points {
		if d := GreatCircleMiles(p, p); d != 0 {
			t.Errorf("GreatCircleMiles(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestGreatCircleMilesSymmetric(t *testing.T) {
	a := Coordinates{Lon: -118.2437, Lat: 34.0522} // Los Angeles
	b := Coordinates{Lon: -74.0060, Lat: 40.7128}  // New York

	ab := GreatCircleMiles(a, b)
	ba := GreatCircleMiles(b, a)
	if ab != ba {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}

	// Known great-circle distance is roughly 2445 miles.
	if ab < 2400 || ab > 2500 {
		t.Errorf("LA -> NYC distance = %v, want ~2445", ab)
	}
}

func TestGreatCircleMilesOneDegreeEquator(t *testing.T) {
	a := Coordinates{Lon: 0, Lat: 0}
	b := Coordinates{Lon: 1, Lat: 0}

	want := 2 * math.Pi * 3958.8 / 360
	got := GreatCircleMiles(a, b)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("one degree at equator = %v, want %v", got, want)
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	a := Coordinates{Lon: 0.1, Lat: -33.3}
	b := Coordinates{Lon: 0.3, Lat: 47.7}

	if got := Interpolate(a, b, 0); got != a {
		t.Errorf("Interpolate(a, b, 0) = %v, want %v", got, a)
	}
	if got := Interpolate(a, b, 1); got != b {
		t.Errorf("Interpolate(a, b, 1) = %v, want %v", got, b)
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	a := Coordinates{Lon: -10, Lat: 20}
	b := Coordinates{Lon: 10, Lat: 40}

	got := Interpolate(a, b, 0.5)
	if math.Abs(got.Lon-0) > 1e-12 || math.Abs(got.Lat-30) > 1e-12 {
		t.Errorf("midpoint = %v, want {0 30}", got)
	}
}
