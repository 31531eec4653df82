// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries read from the environment.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// GeminiAPIKey enables the model-backed features. Empty means every
	// model call is skipped and the deterministic fallbacks run instead.
	GeminiAPIKey string

	// GeminiModel is the model identifier used for all calls.
	GeminiModel string
}

// Load reads the configuration. A missing .env file is not an error; real
// deployments set the environment directly.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         getenv("PORT", "8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.5-flash"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
