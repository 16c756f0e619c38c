// Package config loads runtime settings for the picshare CLI. Sources are
// layered, later ones winning: built-in defaults, a JSON file (-c/-config),
// environment variables, command-line flags.
package config

import "time"

// Config holds runtime settings for the picshare CLI.
//
// Fields:
//   - BaseURL: scheme://host:port of the backend HTTP API.
//   - DatabasePath: sqlite file holding local session state.
//   - RequestTimeout: upper bound for one HTTP exchange; zero disables it.
type Config struct {
	BaseURL        string        `env:"PICSHARE_BASE_URL"`
	DatabasePath   string        `env:"PICSHARE_DATABASE_PATH"`
	RequestTimeout time.Duration `env:"PICSHARE_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.DatabasePath = "picshare.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
