package config

import (
	"flag"
	"os"

	"github.com/avasiljevs/itemvault/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   base URL of the backend API (e.g., "http://127.0.0.1:8080")
//	-t string   state directory for the cached token
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so command arguments pass through untouched.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.ServerAddr, "s", config.ServerAddr, "server base URL")
	fs.StringVar(&config.StateDir, "t", config.StateDir, "state directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
