package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first when present, so local
// development setups can keep their endpoint out of the shell profile.
//
// Recognized variables:
//
//	DZNUTRI_SERVER   backend base URL
//	DZNUTRI_TIMEOUT  request timeout, e.g. "20s"
//	DZNUTRI_DB       path to the local state database
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("DZNUTRI_SERVER"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv("DZNUTRI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("DZNUTRI_DB"); v != "" {
		cfg.DatabasePath = v
	}
}
