package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup. The
// geocoding credential lives here and is injected into the geocoder
// constructor once, never re-read per call.
type Config struct {
	HTTPAddr     string
	DatabaseURL  string
	YandexAPIKey string
	// RedisAddr is optional; empty disables the geocode hot cache.
	RedisAddr string
}

// Load reads settings from the environment, honoring a local .env file
// when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		YandexAPIKey: os.Getenv("YANDEX_API_KEY"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is not set")
	}
	if cfg.YandexAPIKey == "" {
		return Config{}, errors.New("YANDEX_API_KEY is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
