// Package config handles configuration for the taskmesh CLI.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - GatewayEndpointAddr: base URL of the gateway HTTP endpoint.
//   - RequestTimeout: per-request timeout for gateway calls.
type Config struct {
	GatewayEndpointAddr string
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GatewayEndpointAddr = "http://127.0.0.1:3000"
	c.RequestTimeout = 10 * time.Second
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
