// Package common provides shared constants, types, and utilities
// used across opconnect.
package common

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// NewRunID returns a short identifier that tags every log line of one run.
func NewRunID() string {
	id := uuid.NewString()
	return id[:8]
}

// ConfigDir returns the path to the application configuration directory.
// Unlike LogDir it does not create anything; opconnect never writes settings.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}
	return filepath.Join(homeDir, ".config", ConfigDirName), nil
}

// LogDir returns the directory used for file logging.
func LogDir() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "logs"), nil
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
