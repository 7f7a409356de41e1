// Package vpn drives the Cisco AnyConnect command-line client.
package vpn

import (
	"context"
	"fmt"
	"strings"

	"github.com/yllada/opconnect/common"
)

// Client answers the AnyConnect CLI's three interactive prompts (group,
// username, password) for a single host.
type Client struct {
	host   string
	group  string
	user   string
	binary string
	runner common.ProcessRunner
}

// NewClient creates a Client for host that runs binary through runner.
func NewClient(host, group, user, binary string, runner common.ProcessRunner) *Client {
	if binary == "" {
		binary = common.DefaultVPNPath
	}
	return &Client{
		host:   host,
		group:  group,
		user:   user,
		binary: binary,
		runner: runner,
	}
}

// Host returns the VPN endpoint.
func (c *Client) Host() string {
	return c.host
}

// Args returns the arguments for a silent interactive connect.
func (c *Client) Args() []string {
	return []string{"-s", "connect", c.host}
}

// Payload joins group, user and secret with single newlines. No trailing
// newline is added; whatever the secret ends with is sent as is.
func (c *Client) Payload(secret common.Secret) []byte {
	return []byte(c.group + "\n" + c.user + "\n" + secret.Reveal())
}

// Connect runs "vpn -s connect <host>", feeds it the payload and returns
// everything it printed on stdout. The client's own exit status is not
// treated as an error: its text is the result either way.
func (c *Client) Connect(ctx context.Context, secret common.Secret) (string, error) {
	common.LogInfo("VPN: connecting to %s as %s (group %s)", c.host, c.user, c.group)

	result, err := c.runner.RunInteractive(ctx, c.Payload(secret), c.binary, c.Args()...)
	if err != nil {
		return "", fmt.Errorf("vpn connect to %s: %w", c.host, err)
	}

	if !result.Success() {
		common.LogWarn("VPN: %s exited with status %d", c.binary, result.ExitCode)
	}

	return strings.ToValidUTF8(string(result.Stdout), "�"), nil
}
