// Package onepassword reads secrets through the 1Password CLI.
package onepassword

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/yllada/opconnect/common"
)

// signInHint is shown when "op signin" is refused.
const signInHint = "To enable biometric unlock, open Developer Settings in the 1Password app " +
	"and select \"Biometric Unlock for 1Password CLI\""

// Store implements common.CredentialStore by shelling out to "op".
// Nothing is cached: every Read runs the CLI again.
type Store struct {
	binary string
	runner common.ProcessRunner
}

var _ common.CredentialStore = (*Store)(nil)

// New creates a Store that runs binary (usually "op") through runner.
func New(binary string, runner common.ProcessRunner) *Store {
	if binary == "" {
		binary = common.DefaultOnePasswordPath
	}
	return &Store{binary: binary, runner: runner}
}

// Name implements common.CredentialStore.
func (s *Store) Name() string {
	return "1Password"
}

// SignIn runs "op signin" attached to the terminal so biometric or
// password prompts reach the user. Only a zero exit status counts as
// success; there is no retry.
func (s *Store) SignIn(ctx context.Context) error {
	result, err := s.runner.RunAttached(ctx, s.binary, "signin")
	if err != nil {
		return fmt.Errorf("%w: %v. %s", common.ErrSignInFailed, err, signInHint)
	}
	if !result.Success() {
		common.LogWarn("1Password: signin exited with status %d", result.ExitCode)
		return fmt.Errorf("%w (exit status %d). %s", common.ErrSignInFailed, result.ExitCode, signInHint)
	}
	common.LogInfo("1Password: signed in")
	return nil
}

// Read runs "op read <reference>" and returns its stdout verbatim.
func (s *Store) Read(ctx context.Context, reference string) (common.Secret, error) {
	result, err := s.runner.RunToCompletion(ctx, s.binary, "read", reference)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", common.ErrSecretReadFailed, reference, err)
	}
	if !result.Success() {
		return "", fmt.Errorf("%w: %s: op exited with status %d", common.ErrSecretReadFailed, reference, result.ExitCode)
	}
	if !utf8.Valid(result.Stdout) {
		return "", fmt.Errorf("%w: %s: output is not valid UTF-8", common.ErrSecretReadFailed, reference)
	}

	common.LogDebug("1Password: read %d bytes from %s", len(result.Stdout), reference)
	return common.Secret(result.Stdout), nil
}
