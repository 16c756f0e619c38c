// Package services contains the application services of the picshare CLI:
// they orchestrate the API client and the session store, and are the only
// layer allowed to write the stored token.
package services

import (
	"context"

	"github.com/dkarpov/picshare/internal/client/api"
	"github.com/dkarpov/picshare/internal/client/session"
)

// requireToken fetches the stored token for an authenticated operation.
// A missing token short-circuits with api.ErrNoSession before any network
// traffic.
func requireToken(ctx context.Context, store session.Store) (string, error) {
	token := store.Token(ctx)
	if token == "" {
		return "", api.ErrNoSession
	}
	return token, nil
}
