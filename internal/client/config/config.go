// Package config assembles the CLI's runtime settings.
//
// Sources are applied in order, later ones winning:
// defaults → .env/environment → JSON file (-c/-config) → flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the ResuMatch CLI.
//
// Fields:
//   - ServerBaseURL: root of the backend API, including the /api prefix.
//   - RequestTimeout: per-request timeout for the HTTP client; zero keeps
//     the transport's default policy.
//   - CredentialsPath: location of the SQLite file holding the bearer token.
type Config struct {
	ServerBaseURL   string
	RequestTimeout  time.Duration
	CredentialsPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.CredentialsPath = defaultCredentialsPath()
}

func defaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "credentials.db"
	}
	return filepath.Join(dir, "resumatch", "credentials.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
