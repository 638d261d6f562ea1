package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvFile overrides where the brag document lives on disk.
	EnvFile = "BRAG_FILE"
	// DefaultFileName is used under the home directory when BRAG_FILE is unset.
	DefaultFileName = ".brag.md"
)

// ResolvePath determines the brag document location, defaulting to ~/.brag.md.
// The location can be overridden by exporting BRAG_FILE.
func ResolvePath() (string, error) {
	if override, ok := os.LookupEnv(EnvFile); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultFileName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
