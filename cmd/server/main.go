package main

import (
	"database/sql"
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"route-weather-service/internal/adapters/cache"
	"route-weather-service/internal/adapters/forecastapi"
	"route-weather-service/internal/adapters/geocode"
	"route-weather-service/internal/adapters/route"
	"route-weather-service/internal/api"
	"route-weather-service/internal/config"
	"route-weather-service/internal/platform/db"
	"route-weather-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, ORS, Open-Meteo) behind ports and
// starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, geocodeCache, err := openGeocodeCache(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	geocoder, err := geocode.NewNominatimGeocoder(cfg.ContactEmail, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	routeProvider, err := route.NewORSRouteProvider(cfg.ORSAPIKey)
	if err != nil {
		log.Fatal(err)
	}

	forecasts := forecastapi.NewOpenMeteoProvider(nil, cfg.ForecastDays)

	router := api.NewRouter(geocoder, routeProvider, forecasts, api.Defaults{
		IntervalMiles:  cfg.DefaultIntervalMiles,
		AvgSpeedMph:    cfg.DefaultAvgSpeedMph,
		WindWarningMph: cfg.WindWarningMph,
	})

	// Timeouts are tuned for cold-cache trip planning (external API latency,
	// plus the geocoder's one-request-per-second throttle).
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openGeocodeCache prefers a shared Postgres cache when DATABASE_URL is set
// and falls back to a local SQLite file otherwise.
func openGeocodeCache(cfg config.Config) (*sql.DB, ports.GeocodeCache, error) {
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		conn, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return conn, cache.NewSQLGeocodeCache(conn), nil
	}

	conn, err := db.OpenSqlite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cache.InitSchema(conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, cache.NewSqliteGeocodeCache(conn), nil
}
