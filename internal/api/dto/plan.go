package dto

import "time"

type PlanRequest struct {
	StartAddress  string  `json:"start_address" validate:"required"`
	EndAddress    string  `json:"end_address" validate:"required"`
	Departure     string  `json:"departure" validate:"required"`
	IntervalMiles float64 `json:"interval_miles" validate:"omitempty,gt=0"`
	AvgSpeedMph   float64 `json:"avg_speed_mph" validate:"omitempty,gt=0"`
}

type WeatherResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`

	TempF          *float64 `json:"temp_f"`
	PrecipInHr     float64  `json:"precip_in_hr"`
	RainInHr       float64  `json:"rain_in_hr"`
	ShowersInHr    float64  `json:"showers_in_hr"`
	SnowfallInHr   float64  `json:"snowfall_in_hr"`
	CloudPct       float64  `json:"cloud_pct"`
	WindMph        float64  `json:"wind_mph"`
	WindDir        string   `json:"wind_dir"`
	VisibilityMi   float64  `json:"visibility_mi"`
	WindWarning    bool     `json:"wind_warning"`
	PrecipTypeCode *int     `json:"precip_type_code"`
	WeatherCode    *int     `json:"weather_code"`
	Condition      string   `json:"condition"`
	PrecipType     string   `json:"precip_type"`
}

type WaypointResponse struct {
	Label         string          `json:"label"`
	Lon           float64         `json:"lon"`
	Lat           float64         `json:"lat"`
	DistanceMiles float64         `json:"distance_miles"`
	ArriveAt      time.Time       `json:"arrive_at"`
	ArriveDisplay string          `json:"arrive_display"`
	Weather       WeatherResponse `json:"weather"`
}

type PlanResponse struct {
	StartAddress  string             `json:"start_address"`
	EndAddress    string             `json:"end_address"`
	DepartAt      time.Time          `json:"depart_at"`
	TotalMiles    float64            `json:"total_miles"`
	DurationHours float64            `json:"duration_hours"`
	ETA           time.Time          `json:"eta"`
	Waypoints     []WaypointResponse `json:"waypoints"`
}
