package domain

// PrecipType is the normalized precipitation classification used uniformly
// regardless of which upstream code produced it. The empty value means no
// precipitation.
type PrecipType string

const (
	PrecipNone         PrecipType = ""
	PrecipRain         PrecipType = "rain"
	PrecipShowers      PrecipType = "showers"
	PrecipFreezingRain PrecipType = "freezing_rain"
	PrecipSnow         PrecipType = "snow"
	PrecipSnowShowers  PrecipType = "snow_showers"
	PrecipSleet        PrecipType = "sleet"
	PrecipThunderstorm PrecipType = "thunderstorm"
	PrecipFog          PrecipType = "fog"
)

// WeatherRecord is the normalized, provider-agnostic forecast for a single
// waypoint. When Available is false, Reason explains why and the numeric
// fields hold neutral defaults safe for display.
type WeatherRecord struct {
	Available bool
	Reason    string

	// TempF is nil when the provider reported no temperature for the hour.
	TempF *float64

	PrecipInHr   float64 // liquid-equivalent total, inches per hour
	RainInHr     float64 // liquid rain, inches per hour
	ShowersInHr  float64 // liquid showers, inches per hour
	SnowfallInHr float64 // actual snow accumulation, inches per hour

	CloudPct     float64
	WindMph      float64
	WindDir      string // 16-point compass heading
	VisibilityMi float64
	WindWarning  bool

	PrecipTypeCode *int // raw ECMWF precipitation_type code
	WeatherCode    *int // raw WMO weather_code

	Condition  string
	PrecipType PrecipType
}

// UnavailableWeather builds the record attached to a waypoint whose forecast
// could not be retrieved or whose arrival lies outside the forecast horizon.
func UnavailableWeather(reason string) WeatherRecord {
	return WeatherRecord{
		Available: false,
		Reason:    reason,
		WindDir:   "—",
		Condition: "Unavailable",
	}
}
