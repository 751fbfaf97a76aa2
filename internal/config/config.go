package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries read from the environment. Values
// come from a local .env file when present, otherwise from the process
// environment.
type Config struct {
	Port        string
	DBPath      string
	DatabaseURL string

	ORSAPIKey    string
	ContactEmail string

	DefaultIntervalMiles float64
	DefaultAvgSpeedMph   float64
	WindWarningMph       float64
	ForecastDays         int
}

// Load reads configuration and validates the required values. ORS_API_KEY
// authenticates route requests; CONTACT_EMAIL identifies this service to the
// geocoding provider, which requires a way to reach operators of heavy users.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := Config{
		Port:                 Get("PORT", "8080"),
		DBPath:               Get("DB_PATH", "data/app.db"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		ORSAPIKey:            os.Getenv("ORS_API_KEY"),
		ContactEmail:         os.Getenv("CONTACT_EMAIL"),
		DefaultIntervalMiles: getFloat("DEFAULT_INTERVAL_MILES", 50),
		DefaultAvgSpeedMph:   getFloat("DEFAULT_AVG_SPEED_MPH", 60),
		WindWarningMph:       getFloat("WIND_WARNING_MPH", 40),
		ForecastDays:         getInt("FORECAST_DAYS", 15),
	}

	if strings.TrimSpace(cfg.ORSAPIKey) == "" {
		return Config{}, fmt.Errorf("load config: ORS_API_KEY is required")
	}
	if strings.TrimSpace(cfg.ContactEmail) == "" {
		return Config{}, fmt.Errorf("load config: CONTACT_EMAIL is required")
	}
	if cfg.DefaultIntervalMiles <= 0 {
		return Config{}, fmt.Errorf("load config: DEFAULT_INTERVAL_MILES must be positive")
	}
	if cfg.DefaultAvgSpeedMph <= 0 {
		return Config{}, fmt.Errorf("load config: DEFAULT_AVG_SPEED_MPH must be positive")
	}

	return cfg, nil
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return n
}
