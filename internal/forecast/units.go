package forecast

import "math"

const (
	cmPerInch      = 0.393701
	metersPerMile  = 1609.34
	maxVisDisplay  = 99.0    // visibility display cap, miles
	defaultVisMtrs = 16000.0 // neutral visibility when the provider omits it
)

// SnowfallCmToIn converts snow accumulation from centimeters to inches.
func SnowfallCmToIn(cm float64) float64 { return cm * cmPerInch }

// VisibilityMetersToMiles converts visibility to miles, capped for display.
func VisibilityMetersToMiles(m float64) float64 {
	return math.Min(m/metersPerMile, maxVisDisplay)
}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassDirection converts a wind direction in degrees to a 16-point
// compass heading.
func CompassDirection(degrees float64) string {
	idx := int(math.Round(degrees/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}
