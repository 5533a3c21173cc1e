package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avasiljevs/itemvault/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. Absent keys leave the
// corresponding Config fields untouched.
type JsonConfig struct {
	Addr                   string   `json:"server_address"`
	DatabaseDSN            string   `json:"database_dsn"`
	CORSOrigins            []string `json:"cors_origins"`
	FirstSuperuserEmail    string   `json:"first_superuser_email"`
	FirstSuperuserPassword string   `json:"first_superuser_password"`
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

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if len(c.CORSOrigins) > 0 {
		config.CORSOrigins = c.CORSOrigins
	}
	if c.FirstSuperuserEmail != "" {
		config.FirstSuperuserEmail = c.FirstSuperuserEmail
	}
	if c.FirstSuperuserPassword != "" {
		config.FirstSuperuserPassword = c.FirstSuperuserPassword
	}
	return nil
}
