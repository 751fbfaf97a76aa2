package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint. The payload names the
// service so probes against the wrong port fail loudly.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "route-weather-service",
	})
}
