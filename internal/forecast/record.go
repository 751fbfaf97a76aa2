package forecast

import (
	"math"

	"route-weather-service/internal/domain"
)

// BuildRecord assembles the normalized weather record for one series index.
// Missing or nil provider values fall back to neutral defaults per field;
// a single null never fails the whole record.
func BuildRecord(s HourlySeries, idx int, windWarnMph float64) domain.WeatherRecord {
	temp := floatPtrAt(s.TempF, idx)
	if temp != nil {
		v := round(*temp, 1)
		temp = &v
	}

	windMph := floatAt(s.WindMph, idx, 0)
	precipCode := intPtrAt(s.PrecipCode, idx)
	weatherCode := intPtrAt(s.WeatherCode, idx)

	decoded := DecodeCondition(precipCode, weatherCode)

	return domain.WeatherRecord{
		Available: true,

		TempF: temp,

		PrecipInHr:   round(floatAt(s.PrecipIn, idx, 0), 4),
		RainInHr:     round(floatAt(s.RainIn, idx, 0), 4),
		ShowersInHr:  round(floatAt(s.ShowersIn, idx, 0), 4),
		SnowfallInHr: round(SnowfallCmToIn(floatAt(s.SnowfallCm, idx, 0)), 4),

		CloudPct:     round(floatAt(s.CloudPct, idx, 0), 1),
		WindMph:      round(windMph, 1),
		WindDir:      CompassDirection(floatAt(s.WindDirDeg, idx, 0)),
		VisibilityMi: round(VisibilityMetersToMiles(floatAt(s.VisibilityMtr, idx, defaultVisMtrs)), 1),
		WindWarning:  windMph >= windWarnMph,

		PrecipTypeCode: precipCode,
		WeatherCode:    weatherCode,

		Condition:  decoded.Label,
		PrecipType: decoded.PrecipType,
	}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
