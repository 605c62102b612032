// Package config handles configuration for the gateway node, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the edge gateway.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - IdentityEndpoint / TasksEndpoint: gRPC addresses of the backing nodes.
//   - ResolveCacheTTL: how long a token-to-user resolution stays cached.
type Config struct {
	EndpointAddrHTTP string
	IdentityEndpoint string
	TasksEndpoint    string
	ResolveCacheTTL  time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.IdentityEndpoint = "localhost:50051"
	c.TasksEndpoint = "localhost:50052"
	c.ResolveCacheTTL = 30 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
