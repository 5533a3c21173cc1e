package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avasiljevs/itemvault/internal/filex"
)

const tokenFileName = "token"

// saveToken caches the bearer token in the state directory.
func (a *App) saveToken(value string) error {
	dir, err := filex.EnsureSubdDir(a.config.StateDir)
	if err != nil {
		return fmt.Errorf("error preparing state dir: %w", err)
	}
	path := filepath.Join(dir, tokenFileName)
	if err := os.WriteFile(path, []byte(value), 0o600); err != nil {
		return fmt.Errorf("error saving token: %w", err)
	}
	return nil
}

// loadToken returns the cached bearer token, or an error telling the user
// to log in first.
func (a *App) loadToken() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	path := filepath.Join(cwd, a.config.StateDir, tokenFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("not logged in; run login first")
		}
		return "", fmt.Errorf("error reading token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("not logged in; run login first")
	}
	return token, nil
}
