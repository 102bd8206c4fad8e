package main

import (
	"log"
	"os"
	"time"

	"github.com/moodtunes/backend/internal/service"
)

// Config is built once at startup and never modified afterwards
type Config struct {
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	LastFMAPIKey       string
	LastFMBaseURL      string
	Host               string
	Port               string
	CORSOrigins        string
	HTTPClientTimeout  time.Duration
	Env                string
}

func loadConfig() *Config {
	return &Config{
		OpenWeatherAPIKey:  getEnv("OPENWEATHER_API_KEY", ""),
		OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", service.DefaultOpenWeatherBaseURL),
		LastFMAPIKey:       getEnv("LASTFM_API_KEY", ""),
		LastFMBaseURL:      getEnv("LASTFM_BASE_URL", service.DefaultLastFMBaseURL),
		Host:               getEnv("HOST", "0.0.0.0"),
		Port:               getEnv("PORT", "8000"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "*"),
		HTTPClientTimeout:  getDuration("HTTP_CLIENT_TIMEOUT", 0),
		Env:                getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses a Go duration such as "5s"; bad values fall back to the default
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.Printf("Warning: invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
