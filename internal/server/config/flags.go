package config

import (
	"flag"
	"os"
	"strings"

	"github.com/avasiljevs/itemvault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-o string   comma-separated list of allowed CORS origins
//	-e string   bootstrap superuser email
//	-p string   bootstrap superuser password
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-o", "-e", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	origins := fs.String("o", "", "comma-separated CORS origins")
	fs.StringVar(&config.FirstSuperuserEmail, "e", config.FirstSuperuserEmail, "bootstrap superuser email")
	fs.StringVar(&config.FirstSuperuserPassword, "p", config.FirstSuperuserPassword, "bootstrap superuser password")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *origins != "" {
		var parsed []string
		for _, o := range strings.Split(*origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				parsed = append(parsed, o)
			}
		}
		config.CORSOrigins = parsed
	}
}
