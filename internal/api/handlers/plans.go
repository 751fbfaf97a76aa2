package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"route-weather-service/internal/api/dto"
	"route-weather-service/internal/ports"
	"route-weather-service/internal/services"
)

// departureLayouts are accepted in order. Values without an offset are
// treated as UTC.
var departureLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type PlanHandler struct {
	Geocoder  ports.Geocoder
	Router    ports.RouteProvider
	Forecasts ports.ForecastProvider

	DefaultIntervalMiles float64
	DefaultAvgSpeedMph   float64
	WindWarningMph       float64

	Validate *validator.Validate
}

// Plan runs the full trip pipeline for one request: geocode both addresses,
// compute the route, sample waypoints and annotate them with weather.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	req.StartAddress = strings.TrimSpace(req.StartAddress)
	req.EndAddress = strings.TrimSpace(req.EndAddress)

	if req.IntervalMiles == 0 {
		req.IntervalMiles = h.DefaultIntervalMiles
	}
	if req.AvgSpeedMph == 0 {
		req.AvgSpeedMph = h.DefaultAvgSpeedMph
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	depart, err := parseDeparture(req.Departure)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "departure must be an ISO 8601 timestamp")
		return
	}

	svcReq := services.TripRequest{
		StartAddress:   req.StartAddress,
		EndAddress:     req.EndAddress,
		DepartAt:       depart,
		IntervalMiles:  req.IntervalMiles,
		AvgSpeedMph:    req.AvgSpeedMph,
		WindWarningMph: h.WindWarningMph,
	}

	plan, err := services.PlanTrip(r.Context(), svcReq, h.Geocoder, h.Router, h.Forecasts)
	if err != nil {
		if errors.Is(err, ports.ErrAddressNotFound) {
			writeError(w, r, http.StatusBadRequest, "address could not be geocoded")
			return
		}
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "upstream service error")
		return
	}

	res := dto.PlanResponse{
		StartAddress:  plan.StartAddress,
		EndAddress:    plan.EndAddress,
		DepartAt:      plan.DepartAt,
		TotalMiles:    plan.TotalMiles,
		DurationHours: plan.DurationHours,
		ETA:           plan.ETA,
		Waypoints:     make([]dto.WaypointResponse, 0, len(plan.Waypoints)),
	}
	for _, wp := range plan.Waypoints {
		res.Waypoints = append(res.Waypoints, dto.WaypointResponse{
			Label:         wp.Label,
			Lon:           wp.Position.Lon,
			Lat:           wp.Position.Lat,
			DistanceMiles: wp.DistanceMiles,
			ArriveAt:      wp.ArriveAt,
			ArriveDisplay: wp.ArriveDisplay,
			Weather: dto.WeatherResponse{
				Available:      wp.Weather.Available,
				Reason:         wp.Weather.Reason,
				TempF:          wp.Weather.TempF,
				PrecipInHr:     wp.Weather.PrecipInHr,
				RainInHr:       wp.Weather.RainInHr,
				ShowersInHr:    wp.Weather.ShowersInHr,
				SnowfallInHr:   wp.Weather.SnowfallInHr,
				CloudPct:       wp.Weather.CloudPct,
				WindMph:        wp.Weather.WindMph,
				WindDir:        wp.Weather.WindDir,
				VisibilityMi:   wp.Weather.VisibilityMi,
				WindWarning:    wp.Weather.WindWarning,
				PrecipTypeCode: wp.Weather.PrecipTypeCode,
				WeatherCode:    wp.Weather.WeatherCode,
				Condition:      wp.Weather.Condition,
				PrecipType:     string(wp.Weather.PrecipType),
			},
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func parseDeparture(s string) (time.Time, error) {
	for _, layout := range departureLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("unrecognized timestamp format")
}

// validationMessage turns the first failed field into a client-facing message
// without leaking validator internals.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}

	fe := verrs[0]
	switch fe.Field() {
	case "StartAddress":
		return "start_address is required"
	case "EndAddress":
		return "end_address is required"
	case "Departure":
		return "departure is required"
	case "IntervalMiles":
		return "interval_miles must be greater than zero"
	case "AvgSpeedMph":
		return "avg_speed_mph must be greater than zero"
	default:
		return "invalid request"
	}
}
