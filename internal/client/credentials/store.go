// Package credentials persists the opaque bearer token between runs of the
// CLI. The token is the only client-persisted state; it is written on login
// and erased on logout or failed identity resolution.
//
// No validation of the token's shape or expiry happens here — the session
// controller finds out whether it is still good by asking the server.
package credentials

import "context"

// Store holds at most one bearer token.
type Store interface {
	// Save overwrites the stored token.
	Save(ctx context.Context, token string) error

	// Load returns the stored token, with ok=false when none is stored.
	Load(ctx context.Context) (token string, ok bool, err error)

	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
