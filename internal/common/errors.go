// Package common defines sentinel errors and small helpers shared by the
// CLI, the vault and the prompters. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository/vault lookups.
	ErrorNotFound = errors.New("not found")

	// Vault access.
	ErrorUnauthorized   = errors.New("invalid master password")
	ErrorNotInitialized = errors.New("database is not initialized")
	ErrorSessionClosed  = errors.New("session is closed")
	ErrorAlreadyExists  = errors.New("already exists")

	// ErrCancelled is returned by prompts when the user interrupts input
	// (Ctrl-C, Esc in a dialog, or a cancelled context).
	ErrCancelled = errors.New("cancelled by user")
)

// IsCancelled reports whether err was caused by a user interrupt.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
