package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// Point the forecasts are fetched for. Defaults to Turku.
	Latitude  float64
	Longitude float64

	// Timezone is the IANA zone used for day boundaries, the hourly table,
	// and the daily publish hour.
	Timezone string

	// Forecast window requested upstream: days ahead plus look-back days so
	// the past navigation offsets have data.
	ForecastDays int
	PastDays     int

	// PublishHour is the local hour of the daily weather publish.
	PublishHour int

	// SessionTimeout is the inactivity window after which a navigation
	// session is discarded.
	SessionTimeout time.Duration

	HTTPTimeout time.Duration

	// WebhookURL is the delivery target of the daily publish. Empty means
	// the report is only logged.
	WebhookURL string

	Port string
}

// Load reads configuration from environment with Turku defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Latitude = getenvFloat("LATITUDE", 60.45)
	cfg.Longitude = getenvFloat("LONGITUDE", 22.27)
	cfg.Timezone = getenvDefault("TIMEZONE", "Europe/Helsinki")

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 7)
	cfg.PastDays = getenvInt("PAST_DAYS", 3)

	cfg.PublishHour = getenvInt("PUBLISH_HOUR", 8)
	if cfg.PublishHour < 0 || cfg.PublishHour > 23 {
		return nil, fmt.Errorf("PUBLISH_HOUR must be between 0 and 23, got %d", cfg.PublishHour)
	}

	timeoutStr := getenvDefault("SESSION_TIMEOUT", "120s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TIMEOUT: %w", err)
	}
	cfg.SessionTimeout = timeout

	httpTimeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	httpTimeout, err := time.ParseDuration(httpTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = httpTimeout

	cfg.WebhookURL = os.Getenv("DISCORD_WEBHOOK_URL")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
