// Package session persists the single active bearer token (and a couple of
// prompt conveniences) in the client's local database.
//
// The store is one shared mutable slot. Overlapping writers race and the
// last write wins; acceptable for single-session-per-device usage.
package session

import "context"

// Well-known keys in the local store. tokenKey matches the storage key the
// backend's other clients use for the same value.
const (
	tokenKey    = "jwt_token"
	usernameKey = "last_username"
)

// Store holds the session token between runs.
//
// Contract:
//   - Token never fails outward: storage errors are logged and read as
//     "no token".
//   - SetToken overwrites unconditionally.
//   - Clear is idempotent and best-effort; errors are swallowed.
type Store interface {
	Token(ctx context.Context) string
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context)

	LastUsername(ctx context.Context) string
	SetLastUsername(ctx context.Context, username string) error
}
