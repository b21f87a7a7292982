// Package metadata stores the vault's key/value header: salt, verifier and
// format version.
package metadata

import "context"

// Well-known keys.
const (
	KeySalt     = "salt"
	KeyVerifier = "verifier"
	KeyFormat   = "format"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
