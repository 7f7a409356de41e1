package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yllada/opconnect/common"
)

// Settings holds the tunables read from the optional settings file.
type Settings struct {
	// CredentialStore selects the secret backend: "onepassword" or "keyring".
	CredentialStore string `yaml:"credential_store"`
	// OnePasswordPath is the 1Password CLI binary.
	OnePasswordPath string `yaml:"op_path"`
	// VPNPath is the AnyConnect CLI binary.
	VPNPath string `yaml:"vpn_path"`
	// Notifications enables a desktop notification when the run ends.
	Notifications bool `yaml:"notifications"`
	// LogFile also writes logs to the rotating file in the config dir.
	LogFile bool `yaml:"log_file"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		CredentialStore: common.StoreOnePassword,
		OnePasswordPath: common.DefaultOnePasswordPath,
		VPNPath:         common.DefaultVPNPath,
		Notifications:   true,
		LogFile:         false,
		LogLevel:        "warn",
	}
}

// DefaultSettingsPath returns ~/.config/opconnect/config.yaml.
func DefaultSettingsPath() (string, error) {
	dir, err := common.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.SettingsFileName), nil
}

// LoadSettings reads settings from path. A missing file is not an error:
// the defaults are returned and nothing is written to disk.
func LoadSettings(path string) (*Settings, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	return decodeSettings(file)
}

func decodeSettings(r io.Reader) (*Settings, error) {
	settings := DefaultSettings()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	if err := decoder.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// validate rejects unknown enum values and fills empty binary paths.
func (s *Settings) validate() error {
	switch s.CredentialStore {
	case common.StoreOnePassword, common.StoreKeyring:
	case "":
		s.CredentialStore = common.StoreOnePassword
	default:
		return fmt.Errorf("%w: unknown credential_store %q", common.ErrInvalidSettings, s.CredentialStore)
	}

	if s.OnePasswordPath == "" {
		s.OnePasswordPath = common.DefaultOnePasswordPath
	}
	if s.VPNPath == "" {
		s.VPNPath = common.DefaultVPNPath
	}
	if s.LogLevel == "" {
		s.LogLevel = "warn"
	}

	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level. Settings returned by LoadSettings
// always hold a valid level.
func (s *Settings) Level() common.LogLevel {
	level, _ := common.ParseLevel(s.LogLevel)
	return level
}
