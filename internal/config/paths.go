package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DotDir returns the wrapctl config directory, ~/.wrapctl by default.
// WRAPCTL_HOME overrides the location.
func DotDir() (string, error) {
	if d := strings.TrimSpace(os.Getenv("WRAPCTL_HOME")); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", errors.New("cannot determine config directory")
	}
	return filepath.Join(home, ".wrapctl"), nil
}

// ProfilesPath returns the path of profiles.yaml.
func ProfilesPath() (string, error) {
	dir, err := DotDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profiles.yaml"), nil
}

// WatchListPath returns the path of watch.json.
func WatchListPath() (string, error) {
	dir, err := DotDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "watch.json"), nil
}
