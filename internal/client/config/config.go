package config

import "time"

// Config holds runtime settings for the trip admin console.
//
// Fields:
//   - BaseURL: root of the backend REST API, e.g. http://localhost:8000/api/v1.
//   - RequestTimeout: per-request deadline for remote store calls.
//   - TokenFile: path to the file holding the bearer token.
//   - ToastDuration: how long outcome notifications stay visible.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	TokenFile      string
	ToastDuration  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api/v1"
	c.RequestTimeout = 10 * time.Second
	c.TokenFile = ".tripadmin-token"
	c.ToastDuration = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
