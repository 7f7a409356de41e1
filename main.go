// Package main provides the entry point for opconnect.
// opconnect signs in to the 1Password CLI, reads the VPN password and
// answers the Cisco AnyConnect CLI's group, username and password prompts.
//
// Usage:
//
//	opconnect [options] <host> <group> <user> <pass_path>
//
// Environment:
//
//	The 1Password CLI (op) and the AnyConnect CLI
//	(/opt/cisco/anyconnect/bin/vpn) must be installed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/yllada/opconnect/cli"
	"github.com/yllada/opconnect/common"
	"github.com/yllada/opconnect/config"
	"github.com/yllada/opconnect/notify"
	"github.com/yllada/opconnect/process"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	showVersion  = flag.Bool("version", false, "Show version and exit")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp     = flag.Bool("help", false, "Show help message")
	settingsPath = flag.String("config", "", "Settings file (default ~/.config/opconnect/config.yaml)")
)

func main() {
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	if *showHelp {
		cli.PrintHelp(os.Stdout)
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	os.Exit(run())
}

// run returns the process exit code: 0 on success, 1 on any failure.
func run() int {
	cfg, err := config.Build(append([]string{os.Args[0]}, flag.Args()...))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Problem parsing arguments: %v\n\n", err)
		cli.PrintHelp(os.Stderr)
		return 1
	}

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logLevel := settings.Level()
	if *verbose {
		logLevel = common.LevelDebug
	}
	if err := common.InitLogger(common.LogConfig{
		Level:      logLevel,
		EnableFile: settings.LogFile,
		RunID:      common.NewRunID(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		common.LogWarn("stdin is not a terminal; sign-in prompts may not be answerable")
	}

	runner := process.NewRunner()
	store, err := cli.NewCredentialStore(settings, runner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if !process.Exists(settings.VPNPath) {
		common.LogWarn("VPN client %s not found", settings.VPNPath)
	}

	var notifier common.Notifier = notify.Discard{}
	if settings.Notifications {
		notifier = notify.NewDesktop(common.AppName)
	}

	app := cli.New(cli.Options{
		Store:    store,
		Runner:   runner,
		Notifier: notifier,
		VPNPath:  settings.VPNPath,
		Stdout:   os.Stdout,
		Styles:   cli.NewStyles(term.IsTerminal(int(os.Stdout.Fd()))),
	})

	if err := app.Run(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, app.FormatError(err))
		return 1
	}
	return 0
}

func loadSettings() (*config.Settings, error) {
	path := *settingsPath
	if path == "" {
		var err error
		if path, err = config.DefaultSettingsPath(); err != nil {
			return nil, err
		}
	}
	return config.LoadSettings(path)
}

// setupSignalHandler cancels ctx on SIGINT/SIGTERM so a hung child
// process is killed instead of waited on forever.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, stopping", sig)
		cancel()
	}()
}
