package forecastapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"route-weather-service/internal/domain"
	"route-weather-service/internal/forecast"
	"route-weather-service/internal/platform/obs"
)

// hourlyFields are requested as parallel arrays keyed by the hourly time
// axis. precipitation_type is the ECMWF native diagnostic; weather_code is
// the generic WMO classification used for refinement.
var hourlyFields = []string{
	"temperature_2m",
	"precipitation",
	"rain",
	"showers",
	"snowfall",
	"precipitation_type",
	"weather_code",
	"cloud_cover",
	"wind_speed_10m",
	"wind_direction_10m",
	"visibility",
}

// OpenMeteoProvider fetches hourly forecasts from the Open-Meteo ECMWF
// endpoint. The ECMWF-specific endpoint is used rather than the generic
// forecast endpoint because it carries the native precipitation_type field
// and actual snowfall accumulation.
//
// A circuit breaker guards the upstream; there is no per-request retry, a
// failed retrieval is terminal for its waypoint.
type OpenMeteoProvider struct {
	session      *http.Client
	baseURL      string
	forecastDays int
	circuit      *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client, forecastDays int) *OpenMeteoProvider {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if forecastDays <= 0 {
		forecastDays = 15
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoProvider{
		session:      client,
		baseURL:      "https://api.open-meteo.com/v1/ecmwf",
		forecastDays: forecastDays,
		circuit:      cb,
	}
}

type openMeteoPayload struct {
	Hourly *struct {
		Time             []string   `json:"time"`
		Temperature2M    []*float64 `json:"temperature_2m"`
		Precipitation    []*float64 `json:"precipitation"`
		Rain             []*float64 `json:"rain"`
		Showers          []*float64 `json:"showers"`
		Snowfall         []*float64 `json:"snowfall"`
		PrecipType       []*int     `json:"precipitation_type"`
		WeatherCode      []*int     `json:"weather_code"`
		CloudCover       []*float64 `json:"cloud_cover"`
		WindSpeed10M     []*float64 `json:"wind_speed_10m"`
		WindDirection10M []*float64 `json:"wind_direction_10m"`
		Visibility       []*float64 `json:"visibility"`
	} `json:"hourly"`
}

// HourlyForecast fetches the hourly series for a position. The series is
// requested in UTC so arrival times align without zone conversion downstream.
func (p *OpenMeteoProvider) HourlyForecast(
	ctx context.Context,
	at domain.Coordinates,
) (_ forecast.HourlySeries, err error) {
	defer obs.Time(ctx, "openmeteo.HourlyForecast")(&err)

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	q.Set("hourly", strings.Join(hourlyFields, ","))
	q.Set("temperature_unit", "fahrenheit")
	q.Set("wind_speed_unit", "mph")
	q.Set("precipitation_unit", "inch")
	q.Set("forecast_days", strconv.Itoa(p.forecastDays))
	q.Set("timezone", "UTC")

	endpoint := fmt.Sprintf("%s?%s", p.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return forecast.HourlySeries{}, fmt.Errorf("create forecast request: %w", err)
	}

	result, err := p.circuit.Execute(func() (interface{}, error) {
		resp, execErr := p.session.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			return nil, fmt.Errorf("open-meteo returned HTTP %d", resp.StatusCode)
		}

		var payload openMeteoPayload
		if decErr := json.NewDecoder(resp.Body).Decode(&payload); decErr != nil {
			return nil, fmt.Errorf("decode forecast response: %w", decErr)
		}
		return &payload, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return forecast.HourlySeries{}, fmt.Errorf("forecast circuit open: %w", err)
		}
		return forecast.HourlySeries{}, err
	}

	payload := result.(*openMeteoPayload)
	if payload.Hourly == nil {
		return forecast.HourlySeries{}, errors.New("no hourly data in open-meteo response")
	}

	h := payload.Hourly
	return forecast.HourlySeries{
		Times:         h.Time,
		TempF:         h.Temperature2M,
		PrecipIn:      h.Precipitation,
		RainIn:        h.Rain,
		ShowersIn:     h.Showers,
		SnowfallCm:    h.Snowfall,
		PrecipCode:    h.PrecipType,
		WeatherCode:   h.WeatherCode,
		CloudPct:      h.CloudCover,
		WindMph:       h.WindSpeed10M,
		WindDirDeg:    h.WindDirection10M,
		VisibilityMtr: h.Visibility,
	}, nil
}
