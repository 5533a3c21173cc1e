package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avasiljevs/itemvault/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling.
type JsonConfig struct {
	ServerAddr string `json:"server_addr"`
	StateDir   string `json:"state_dir"`
}

// parseJson overlays configuration values from a JSON file given via the
// -c or -config command-line flags. Without the flag nothing is loaded.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	if c.ServerAddr != "" {
		config.ServerAddr = c.ServerAddr
	}
	if c.StateDir != "" {
		config.StateDir = c.StateDir
	}
	return nil
}
