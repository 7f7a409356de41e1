// Package cli runs the connect sequence: sign in to the credential store,
// read the VPN password, and hand it to the AnyConnect client.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/yllada/opconnect/common"
	"github.com/yllada/opconnect/config"
	"github.com/yllada/opconnect/keyring"
	"github.com/yllada/opconnect/onepassword"
	"github.com/yllada/opconnect/vpn"
)

// Options configures a CLI. Nil fields get working defaults except
// Store and Runner, which are required.
type Options struct {
	Store    common.CredentialStore
	Runner   common.ProcessRunner
	Notifier common.Notifier
	VPNPath  string
	Stdout   io.Writer
	Styles   Styles
}

// CLI sequences the external processes for one run.
type CLI struct {
	store    common.CredentialStore
	runner   common.ProcessRunner
	notifier common.Notifier
	vpnPath  string
	stdout   io.Writer
	styles   Styles
}

// New creates a CLI from opts.
func New(opts Options) *CLI {
	c := &CLI{
		store:    opts.Store,
		runner:   opts.Runner,
		notifier: opts.Notifier,
		vpnPath:  opts.VPNPath,
		stdout:   opts.Stdout,
		styles:   opts.Styles,
	}
	if c.stdout == nil {
		c.stdout = os.Stdout
	}
	if c.vpnPath == "" {
		c.vpnPath = common.DefaultVPNPath
	}
	return c
}

// NewCredentialStore returns the store selected in settings.
func NewCredentialStore(settings *config.Settings, runner common.ProcessRunner) (common.CredentialStore, error) {
	switch settings.CredentialStore {
	case common.StoreOnePassword, "":
		return onepassword.New(settings.OnePasswordPath, runner), nil
	case common.StoreKeyring:
		return keyring.New(common.DefaultKeyringService), nil
	default:
		return nil, fmt.Errorf("%w: unknown credential_store %q", common.ErrInvalidSettings, settings.CredentialStore)
	}
}

// Run signs in, reads the secret at cfg.PassPath and connects. It stops at
// the first failure; later steps never run. The VPN client's output is
// printed whatever its exit status.
func (c *CLI) Run(ctx context.Context, cfg config.Config) error {
	common.LogInfo("Run: %s", cfg)

	c.printStep("Signing into " + c.store.Name())
	if err := c.store.SignIn(ctx); err != nil {
		return c.fail(cfg, err)
	}

	secret, err := c.store.Read(ctx, cfg.PassPath)
	if err != nil {
		return c.fail(cfg, err)
	}

	c.printStep("Connecting with AnyConnect …")
	client := vpn.NewClient(cfg.Host, cfg.Group, cfg.User, c.vpnPath, c.runner)
	out, err := client.Connect(ctx, secret)
	if err != nil {
		return c.fail(cfg, err)
	}

	fmt.Fprintf(c.stdout, "%s %s\n", c.styles.Success.Render("Connected:"), out)
	c.notify(common.NotificationSuccess, "VPN connect finished", cfg.Host)
	return nil
}

func (c *CLI) printStep(msg string) {
	fmt.Fprintln(c.stdout, c.styles.Step.Render(msg))
}

func (c *CLI) fail(cfg config.Config, err error) error {
	common.LogError("Run failed for %s: %v", cfg.Host, err)
	c.notify(common.NotificationError, "VPN connect failed", err.Error())
	return err
}

// notify is best effort; a missing notification daemon never fails a run.
func (c *CLI) notify(kind common.NotificationType, title, message string) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.Notify(kind, title, message); err != nil {
		common.LogDebug("Notification not sent: %v", err)
	}
}

// FormatError renders err for the error stream.
func (c *CLI) FormatError(err error) string {
	return c.styles.Error.Render("Error:") + " " + err.Error()
}

// PrintHelp prints CLI usage help.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `opconnect - connect to AnyConnect with a password from 1Password

Usage:
  opconnect [OPTIONS] <host> <group> <user> <pass_path>

Arguments:
  host        VPN endpoint, e.g. vpn.example.com
  group       group (tunnel profile) to select
  user        VPN username
  pass_path   secret reference, e.g. "op://Private/Corp VPN/password"

Options:
  -config PATH   settings file (default ~/.config/opconnect/config.yaml)
  -verbose       enable debug logging on stderr
  -version       show version and exit
  -help          show this help message

Notes:
  - "op signin" needs biometric unlock enabled for the 1Password CLI
  - set credential_store: keyring to read the password from the
    system keyring instead (pass_path is then service/user)
`)
}
