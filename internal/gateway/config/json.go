package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/taskmesh/internal/flagx"
	"github.com/dmitrijs2005/taskmesh/internal/timex"
)

// JsonConfig is an intermediate DTO for reading JSON configuration files.
// timex.Duration accepts both "30m" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	IdentityEndpoint string         `json:"identity_endpoint"`
	TasksEndpoint    string         `json:"tasks_endpoint"`
	ResolveCacheTTL  timex.Duration `json:"resolve_cache_ttl"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigValue(os.Args[1:])

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.IdentityEndpoint = c.IdentityEndpoint
	config.TasksEndpoint = c.TasksEndpoint
	config.ResolveCacheTTL = time.Duration(c.ResolveCacheTTL.Duration)
}
