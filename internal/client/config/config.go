// Package config holds runtime settings for the sportactive CLI and the
// layered loading logic: defaults, then an optional JSON file, then
// command-line flags, each later source overriding the earlier ones.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request timeout for outbound calls.
//   - DatabasePath: path of the local SQLite DB (session keys + activity cache).
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerBaseURL       string
	RequestTimeout      time.Duration
	DatabasePath        string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:7001/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "sportactive.db"
	c.OnlineCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
