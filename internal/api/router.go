package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"route-weather-service/internal/api/handlers"
	"route-weather-service/internal/ports"
)

// Defaults carries the request parameters filled in when a client omits them.
type Defaults struct {
	IntervalMiles  float64
	AvgSpeedMph    float64
	WindWarningMph float64
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	geocoder ports.Geocoder,
	router ports.RouteProvider,
	forecasts ports.ForecastProvider,
	defaults Defaults,
) http.Handler {
	mux := http.NewServeMux()

	planHandler := &handlers.PlanHandler{
		Geocoder:             geocoder,
		Router:               router,
		Forecasts:            forecasts,
		DefaultIntervalMiles: defaults.IntervalMiles,
		DefaultAvgSpeedMph:   defaults.AvgSpeedMph,
		WindWarningMph:       defaults.WindWarningMph,
		Validate:             validator.New(),
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/plans", planHandler.Plan)

	return requestIDMiddleware(loggingMiddleware(mux))
}
