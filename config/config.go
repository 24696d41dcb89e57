package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the viewer.
type Config struct {
	FiresCSV         string
	ProvincesGeoJSON string
	DatabaseURL      string
	Port             int
	BearerToken      string
	MaxRecords       int
	DefaultTopN      int
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		FiresCSV:         "incendios.csv",
		ProvincesGeoJSON: "spain-provinces.geojson",
		Port:             8080,
		MaxRecords:       5000,
		DefaultTopN:      10,
	}

	if path := os.Getenv("FIRES_CSV"); path != "" {
		cfg.FiresCSV = path
	}
	if path := os.Getenv("PROVINCES_GEOJSON"); path != "" {
		cfg.ProvincesGeoJSON = path
	}

	// When set, records load from Postgres instead of the CSV.
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := os.Getenv("API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	if limitStr := os.Getenv("API_MAX_RECORDS"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			cfg.MaxRecords = limit
		} else {
			return cfg, fmt.Errorf("invalid API_MAX_RECORDS: %s", limitStr)
		}
	}

	if topStr := os.Getenv("API_DEFAULT_TOP_N"); topStr != "" {
		if top, err := strconv.Atoi(topStr); err == nil && top > 0 {
			cfg.DefaultTopN = top
		} else {
			return cfg, fmt.Errorf("invalid API_DEFAULT_TOP_N: %s", topStr)
		}
	}

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
