package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/taskmesh/internal/flagx"
	"github.com/dmitrijs2005/taskmesh/internal/timex"
)

// JsonConfig is an intermediate DTO for reading JSON configuration files.
type JsonConfig struct {
	GatewayEndpointAddr string         `json:"gateway_endpoint_addr"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
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

	config.GatewayEndpointAddr = c.GatewayEndpointAddr
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
