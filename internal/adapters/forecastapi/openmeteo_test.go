package forecastapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"route-weather-service/internal/domain"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OpenMeteoProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p := NewOpenMeteoProvider(server.Client(), 15)
	p.baseURL = server.URL
	return p
}

func TestHourlyForecast(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("timezone") != "UTC" {
			t.Errorf("timezone = %q, want UTC", q.Get("timezone"))
		}
		if q.Get("temperature_unit") != "fahrenheit" || q.Get("wind_speed_unit") != "mph" {
			t.Error("unit parameters not set")
		}
		if q.Get("forecast_days") != "15" {
			t.Errorf("forecast_days = %q, want 15", q.Get("forecast_days"))
		}
		if !strings.Contains(q.Get("hourly"), "precipitation_type") {
			t.Error("hourly fields must include precipitation_type")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"hourly": {
				"time": ["2024-01-01T08:00", "2024-01-01T09:00"],
				"temperature_2m": [null, 31.2],
				"precipitation": [0.01, 0.02],
				"rain": [0.01, 0.0],
				"showers": [0.0, 0.0],
				"snowfall": [0.0, 1.5],
				"precipitation_type": [1, 5],
				"weather_code": [61, 73],
				"cloud_cover": [90, null],
				"wind_speed_10m": [12.1, 18.4],
				"wind_direction_10m": [180, 200],
				"visibility": [16000, 8000]
			}
		}`))
	})

	series, err := p.HourlyForecast(context.Background(), domain.Coordinates{Lon: -112.07, Lat: 33.45})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series.Times) != 2 {
		t.Fatalf("times length = %d, want 2", len(series.Times))
	}
	if series.TempF[0] != nil {
		t.Errorf("TempF[0] = %v, want nil (provider null)", *series.TempF[0])
	}
	if series.TempF[1] == nil || *series.TempF[1] != 31.2 {
		t.Errorf("TempF[1] = %v, want 31.2", series.TempF[1])
	}
	if series.PrecipCode[1] == nil || *series.PrecipCode[1] != 5 {
		t.Errorf("PrecipCode[1] = %v, want 5", series.PrecipCode[1])
	}
	if series.CloudPct[1] != nil {
		t.Error("CloudPct[1] should be nil")
	}
}

func TestHourlyForecastMissingHourlyBlock(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"latitude": 33.45, "longitude": -112.07}`))
	})

	if _, err := p.HourlyForecast(context.Background(), domain.Coordinates{}); err == nil {
		t.Error("expected error when hourly block is absent")
	}
}

func TestHourlyForecastUpstreamStatus(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	})

	_, err := p.HourlyForecast(context.Background(), domain.Coordinates{})
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("err = %v, want status in message", err)
	}
}
