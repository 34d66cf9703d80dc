// Package config loads server configuration from the environment. A
// .env file is read when present. Provider keys are optional; a
// missing key switches that provider's endpoints to fallback data
// rather than preventing startup.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	Port string

	GoogleMapsAPIKey  string
	OpenWeatherAPIKey string
	TripAdvisorAPIKey string

	// Optional backing stores. Empty means run without them.
	DatabaseURL string
	RedisURL    string

	MigrationsDir string
}

// Load reads configuration from the environment, consulting .env first.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:              getEnv("PORT", "8080"),
		GoogleMapsAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		TripAdvisorAPIKey: os.Getenv("TRIPADVISOR_API_KEY"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", "migrations"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
