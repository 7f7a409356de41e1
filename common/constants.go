// Package common provides shared constants, types, and utilities
// used across opconnect.
package common

// Application metadata.
const (
	// AppName is the display name of the application.
	AppName = "opconnect"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "opconnect"
)

// File names used by the application.
const (
	SettingsFileName = "config.yaml"
	LogFileName      = "opconnect.log"
)

// External binaries and their defaults.
const (
	// DefaultOnePasswordPath is the 1Password CLI, resolved through PATH.
	DefaultOnePasswordPath = "op"
	// DefaultVPNPath is where the AnyConnect installer puts its CLI.
	DefaultVPNPath = "/opt/cisco/anyconnect/bin/vpn"
	// DefaultKeyringService is used when a keyring reference names no service.
	DefaultKeyringService = "opconnect"
)

// Credential store kinds accepted in the settings file.
const (
	StoreOnePassword = "onepassword"
	StoreKeyring     = "keyring"
)
