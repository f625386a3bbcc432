// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

// GlobalDirName is the name of the global now-desktop directory.
const GlobalDirName = ".now-desktop"

// File names
const (
	SettingsFileName = "settings.yaml"
	AuthFileName     = "auth.yaml"
)

// GlobalDir returns the path to the global now-desktop directory (~/.now-desktop/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalAuthFile returns the path to the auth.yaml file holding the session.
func GlobalAuthFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AuthFileName), nil
}

// EnsureGlobalDir creates the global now-desktop directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
