// Package config turns the command line and the optional settings file
// into the values the connect sequence runs on.
package config

import (
	"fmt"

	"github.com/yllada/opconnect/common"
)

// minArgs is the program name plus host, group, user and pass_path.
const minArgs = 5

// Config is the connection target taken from the positional arguments.
// It is built once at startup and treated as immutable afterwards.
type Config struct {
	// Host is the VPN endpoint passed to "vpn -s connect".
	Host string
	// Group answers the client's group selection prompt.
	Group string
	// User answers the username prompt.
	User string
	// PassPath locates the password in the credential store,
	// e.g. "op://Private/Corp VPN/password".
	PassPath string
}

// Build extracts a Config from a process argument vector whose first
// entry is the program name. Values are taken verbatim; extra entries
// are ignored.
func Build(args []string) (Config, error) {
	if len(args) < minArgs {
		return Config{}, fmt.Errorf("%w: expected <host> <group> <user> <pass_path>, got %d",
			common.ErrInsufficientArguments, max(len(args)-1, 0))
	}

	return Config{
		Host:     args[1],
		Group:    args[2],
		User:     args[3],
		PassPath: args[4],
	}, nil
}

// String renders the config for diagnostics. It carries no secret,
// only the reference to one.
func (c Config) String() string {
	return fmt.Sprintf("host=%s group=%s user=%s pass_path=%s", c.Host, c.Group, c.User, c.PassPath)
}
