package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/taskmesh/internal/flagx"
)

// parseFlags populates selected gateway Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-i string   identity node gRPC endpoint
//	-k string   tasks node gRPC endpoint
//	-l int      resolve cache TTL, minutes
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-k", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.IdentityEndpoint, "i", config.IdentityEndpoint, "identity gRPC endpoint")
	fs.StringVar(&config.TasksEndpoint, "k", config.TasksEndpoint, "tasks gRPC endpoint")

	resolveCacheTTL := fs.Int("l", int(config.ResolveCacheTTL.Minutes()), "resolve cache TTL (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ResolveCacheTTL = time.Duration(*resolveCacheTTL) * time.Minute
}
