// Package common provides shared constants, types, and utilities
// used across opconnect.
package common

import "errors"

// Sentinel errors for the connect sequence.
// These can be checked with errors.Is() for proper error handling.
var (
	// Argument and settings errors.
	ErrInsufficientArguments = errors.New("not enough arguments")
	ErrInvalidSettings       = errors.New("invalid settings")
	ErrConfigLoad            = errors.New("failed to load configuration")

	// Credential errors.
	ErrSignInFailed     = errors.New("credential manager sign-in failed")
	ErrSecretReadFailed = errors.New("failed to read secret")

	// Process errors.
	ErrProcessSpawnFailed = errors.New("failed to start process")
	ErrWriteFailed        = errors.New("failed to write to process input")
	ErrWaitFailed         = errors.New("failed to wait for process")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
