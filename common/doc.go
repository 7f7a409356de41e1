// Package common provides shared constants, types, utilities, and interfaces
// used throughout opconnect.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: binary defaults, file names, credential store kinds
//   - Errors: sentinel errors for every failure of the connect sequence
//   - Interfaces: ProcessRunner, CredentialStore and Notifier abstractions
//   - Secret: a string type that never prints its value
//   - Logger: leveled logging to stderr with optional rotating file output
//
// # Usage
//
//	common.LogInfo("Reading secret from %s", store.Name())
//
//	if errors.Is(err, common.ErrSignInFailed) {
//	    // Sign-in was refused; nothing else ran
//	}
package common
