// Package config handles configuration for the CLI client: defaults, an
// optional JSON overlay and command-line flags, applied in that order.
package config

// Config holds runtime settings for the itemvault CLI.
//
// Fields:
//   - ServerAddr: base URL of the backend HTTP API.
//   - StateDir: directory (relative to the working directory) where the CLI
//     keeps its cached bearer token.
type Config struct {
	ServerAddr string
	StateDir   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8080"
	c.StateDir = ".itemvault"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
