package route

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"route-weather-service/internal/domain"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *ORSRouteProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewORSRouteProvider("test-key")
	if err != nil {
		t.Fatalf("NewORSRouteProvider: %v", err)
	}
	p.baseURL = server.URL
	return p
}

func TestGetRoute(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Error("Authorization header not set")
		}

		var req directionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Coordinates) != 2 {
			t.Errorf("coordinates = %v, want origin and destination", req.Coordinates)
		}
		if req.Instructions {
			t.Error("instructions should be disabled")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"features": [{
				"geometry": {"coordinates": [[-112.074, 33.4484], [-111.9, 33.5], [-111.7, 33.6]]},
				"properties": {"summary": {"distance": 32186.8, "duration": 1800}}
			}]
		}`))
	})

	got, err := p.GetRoute(context.Background(),
		domain.Coordinates{Lon: -112.074, Lat: 33.4484},
		domain.Coordinates{Lon: -111.7, Lat: 33.6},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Geometry) != 3 {
		t.Fatalf("geometry length = %d, want 3", len(got.Geometry))
	}
	if got.Geometry[0] != (domain.Coordinates{Lon: -112.074, Lat: 33.4484}) {
		t.Errorf("first point = %+v", got.Geometry[0])
	}
	if math.Abs(got.DistanceMiles-20.0) > 0.01 {
		t.Errorf("DistanceMiles = %v, want ~20", got.DistanceMiles)
	}
	if math.Abs(got.DurationHours-0.5) > 1e-9 {
		t.Errorf("DurationHours = %v, want 0.5", got.DurationHours)
	}
}

func TestGetRouteNoFeatures(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features": []}`))
	})

	_, err := p.GetRoute(context.Background(), domain.Coordinates{}, domain.Coordinates{Lon: 1})
	if err == nil {
		t.Error("expected error for empty feature list")
	}
}

func TestGetRouteUpstreamError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":2010,"message":"no route"}}`, http.StatusNotFound)
	})

	_, err := p.GetRoute(context.Background(), domain.Coordinates{}, domain.Coordinates{Lon: 1})
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var he *httpStatusError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Errorf("err = %v, want httpStatusError with 404", err)
	}
}

func TestNewORSRouteProviderRequiresKey(t *testing.T) {
	if _, err := NewORSRouteProvider(""); err == nil {
		t.Error("expected error for empty API key")
	}
}
