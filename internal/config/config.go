// Package config loads runtime settings for the DZnutri clients.
//
// Sources are applied in order, later ones winning:
// defaults -> environment (.env supported) -> JSON file -> command-line flags.
package config

import "time"

// Config holds runtime settings shared by the scan and admin clients.
//
// ServerEndpointAddr is the backend base URL. It is the single point where
// the per-environment endpoint (local dev origin, LAN address of a dev
// machine, production host) is resolved.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	DatabasePath       string
}

// LoadDefaults populates c with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "dznutri.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given via -c/-config), and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
