package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is merged in first (without overriding variables the
// shell already set); a missing .env is not an error.
//
// Recognized variables:
//
//	RESUMATCH_SERVER_URL       — backend base URL
//	RESUMATCH_REQUEST_TIMEOUT  — Go duration string, e.g. "10s"
//	RESUMATCH_CREDENTIALS_PATH — credentials database file
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("RESUMATCH_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("RESUMATCH_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("RESUMATCH_CREDENTIALS_PATH"); v != "" {
		cfg.CredentialsPath = v
	}
}
