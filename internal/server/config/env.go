package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the process environment. A .env file
// in the working directory is loaded first, without overriding variables
// already set; a missing file is not an error.
func parseEnv(config *Config) error {
	_ = godotenv.Load()

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("error parsing environment: %w", err)
	}
	return nil
}
