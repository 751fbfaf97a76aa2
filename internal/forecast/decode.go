package forecast

import (
	"fmt"

	"route-weather-service/internal/domain"
)

// Decoded is the normalized result of classifying a forecast hour.
type Decoded struct {
	PrecipType domain.PrecipType
	Label      string
}

// precipTypeTable maps ECMWF native precipitation_type codes to a normalized
// tag and condition label. Wet snow collapses to snow; ice pellets and
// rain/snow mix collapse to sleet; freezing drizzle collapses to freezing
// rain.
var precipTypeTable = map[int]Decoded{
	0:  {domain.PrecipNone, "No precipitation"},
	1:  {domain.PrecipRain, "Rain"},
	3:  {domain.PrecipFreezingRain, "Freezing rain"},
	5:  {domain.PrecipSnow, "Snow"},
	6:  {domain.PrecipSnow, "Wet snow"},
	7:  {domain.PrecipSleet, "Rain/snow mix"},
	8:  {domain.PrecipSleet, "Ice pellets"},
	12: {domain.PrecipFreezingRain, "Freezing drizzle"},
}

// wmoLabels maps WMO weather_code values to human-readable condition labels,
// covering non-precipitation conditions the primary code cannot express.
var wmoLabels = map[int]string{
	0: "Clear sky", 1: "Mainly clear", 2: "Partly cloudy", 3: "Overcast",
	45: "Fog", 48: "Rime fog",
	51: "Light drizzle", 53: "Moderate drizzle", 55: "Dense drizzle",
	56: "Light freezing drizzle", 57: "Heavy freezing drizzle",
	61: "Slight rain", 63: "Moderate rain", 65: "Heavy rain",
	66: "Light freezing rain", 67: "Heavy freezing rain",
	71: "Slight snow", 73: "Moderate snow", 75: "Heavy snow", 77: "Snow grains",
	80: "Slight showers", 81: "Moderate showers", 82: "Heavy showers",
	85: "Slight snow showers", 86: "Heavy snow showers",
	95: "Thunderstorm", 96: "Thunderstorm w/ hail", 99: "Thunderstorm w/ hail",
}

// wmoPrecipTypes maps the WMO codes that carry classification the primary
// code lacks: fog, convective showers, snow showers and thunderstorms.
var wmoPrecipTypes = map[int]domain.PrecipType{
	45: domain.PrecipFog, 48: domain.PrecipFog,
	80: domain.PrecipShowers, 81: domain.PrecipShowers, 82: domain.PrecipShowers,
	85: domain.PrecipSnowShowers, 86: domain.PrecipSnowShowers,
	95: domain.PrecipThunderstorm, 96: domain.PrecipThunderstorm, 99: domain.PrecipThunderstorm,
}

// decodePrecipType resolves the primary ECMWF code. Unknown codes produce a
// placeholder label and no precipitation type; this stage never fails.
func decodePrecipType(code *int) Decoded {
	if code == nil {
		return Decoded{domain.PrecipNone, "Unknown"}
	}
	if d, ok := precipTypeTable[*code]; ok {
		return d
	}
	return Decoded{domain.PrecipNone, fmt.Sprintf("Type %d", *code)}
}

// DecodeCondition resolves precipitation type and condition label from the
// primary ECMWF precipitation_type code, refined by the WMO weather_code.
//
// Precedence: fog and thunderstorm from the WMO code override the primary
// result unconditionally; showers and snow showers fill in only when the
// primary produced no type; otherwise a WMO label (clear, overcast, ...) is
// used for display only when the primary produced no type. A populated
// primary type is never replaced by a showers or clear-sky refinement.
func DecodeCondition(precipCode, weatherCode *int) Decoded {
	out := decodePrecipType(precipCode)

	if weatherCode == nil {
		return out
	}

	wmoType, hasType := wmoPrecipTypes[*weatherCode]
	wmoLabel, hasLabel := wmoLabels[*weatherCode]

	switch {
	case hasType && (wmoType == domain.PrecipFog || wmoType == domain.PrecipThunderstorm):
		out.PrecipType = wmoType
		out.Label = wmoLabel
	case hasType && out.PrecipType == domain.PrecipNone:
		out.PrecipType = wmoType
		out.Label = wmoLabel
	case hasLabel && out.PrecipType == domain.PrecipNone:
		out.Label = wmoLabel
	}

	return out
}
