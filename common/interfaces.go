// Package common provides shared constants, types, and utilities
// used across opconnect.
package common

import "context"

// ProcessResult is what a finished child process leaves behind.
type ProcessResult struct {
	// ExitCode is the child's exit status; -1 if it was killed by a signal.
	ExitCode int
	// Stdout holds the captured standard output, if it was captured.
	Stdout []byte
}

// Success reports whether the child exited with status zero.
func (r ProcessResult) Success() bool {
	return r.ExitCode == 0
}

// ProcessRunner abstracts external process execution so the connect
// sequence can be tested without real binaries. A non-zero exit status
// is reported through ProcessResult, never as an error; errors mean the
// process could not be started, fed, or awaited.
type ProcessRunner interface {
	// RunAttached runs the command with the caller's stdin, stdout and
	// stderr so interactive prompts reach the terminal.
	RunAttached(ctx context.Context, name string, args ...string) (ProcessResult, error)
	// RunToCompletion runs the command and captures its stdout.
	RunToCompletion(ctx context.Context, name string, args ...string) (ProcessResult, error)
	// RunInteractive writes input to the command's stdin in one write,
	// closes stdin, and captures stdout until the command exits.
	RunInteractive(ctx context.Context, input []byte, name string, args ...string) (ProcessResult, error)
}

// CredentialStore signs in to a secret backend and reads secrets from it.
type CredentialStore interface {
	// SignIn authenticates against the backend. It may prompt the user.
	SignIn(ctx context.Context) error
	// Read returns the secret stored at reference.
	Read(ctx context.Context, reference string) (Secret, error)
	// Name is a human-readable backend name for status output.
	Name() string
}

// NotificationType represents the kind of a notification.
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationSuccess
	NotificationError
)

// Notifier defines the interface for sending notifications.
type Notifier interface {
	// Notify sends a notification with the given title and message.
	Notify(kind NotificationType, title, message string) error
}
