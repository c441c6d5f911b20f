package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DefaultRegistryURL    = "http://localhost:3333"
	DefaultIBGEURL        = "https://servicodados.ibge.gov.br/api/v1/localidades"
	DefaultGeolocationURL = "http://ip-api.com/json"
	DefaultHTTPTimeout    = 30 * time.Second
)

// Config holds the endpoints and client settings shared by all commands
type Config struct {
	RegistryURL    string
	IBGEURL        string
	GeolocationURL string
	HTTPTimeout    time.Duration

	// Fixed device position; when set it takes precedence over GeolocationURL
	Latitude  *float64
	Longitude *float64
}

// Load reads the configuration from the environment, falling back to defaults
func Load() (Config, error) {
	cfg := Config{
		RegistryURL:    getenv("REGISTRY_URL", DefaultRegistryURL),
		IBGEURL:        getenv("IBGE_URL", DefaultIBGEURL),
		GeolocationURL: getenv("GEOLOCATION_URL", DefaultGeolocationURL),
		HTTPTimeout:    DefaultHTTPTimeout,
	}

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.HTTPTimeout = d
	}

	lat, err := getfloat("GEOLOCATION_LAT")
	if err != nil {
		return cfg, err
	}
	lng, err := getfloat("GEOLOCATION_LNG")
	if err != nil {
		return cfg, err
	}
	if lat != nil && lng != nil {
		cfg.Latitude, cfg.Longitude = lat, lng
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getfloat(key string) (*float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return &f, nil
}
