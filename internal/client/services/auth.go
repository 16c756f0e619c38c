package services

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkarpov/picshare/internal/client/api"
	"github.com/dkarpov/picshare/internal/client/models"
	"github.com/dkarpov/picshare/internal/client/session"
	"github.com/dkarpov/picshare/internal/logging"
)

// AuthService owns the session lifecycle.
//
// Contract:
//   - Login/Refresh persist the (new) token before returning success.
//   - Refresh clears the stored token on any definitive failure.
//   - StartupCheck never trusts a stored token without verifying it
//     against the backend first.
//   - Logout never fails outward.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, username, email, password string) (string, error)
	Refresh(ctx context.Context) error
	StartupCheck(ctx context.Context) bool
	RetrieveUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context)
	DeleteAccount(ctx context.Context) error
	LastUsername(ctx context.Context) string
}

type authService struct {
	client api.Client
	store  session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, store session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

// Login authenticates and persists the issued token. Storage failures
// degrade to a generic failure: a session we could not persist is a
// session we do not report as established.
func (a *authService) Login(ctx context.Context, email, password string) error {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.store.SetToken(ctx, token); err != nil {
		a.log.Error(ctx, "persisting token after login", "err", err)
		return api.NewError(api.CodeUnknown, "An unexpected error has occurred, please try again later")
	}

	if err := a.store.SetLastUsername(ctx, email); err != nil {
		a.log.Warn(ctx, "remembering username", "err", err)
	}

	return nil
}

// Register creates the account and returns the verify-your-email message.
// No token is issued until the address is confirmed.
func (a *authService) Register(ctx context.Context, username, email, password string) (string, error) {
	if err := a.client.Register(ctx, username, email, password); err != nil {
		return "", err
	}
	return api.VerifyEmailMessage, nil
}

// Refresh rotates the stored token. On any failure the stored token is
// cleared first: a token the backend refused is never kept around.
func (a *authService) Refresh(ctx context.Context) error {
	token, err := requireToken(ctx, a.store)
	if err != nil {
		return err
	}

	newToken, err := a.client.RefreshToken(ctx, token)
	if err != nil {
		a.store.Clear(ctx)
		return err
	}

	if err := a.store.SetToken(ctx, newToken); err != nil {
		a.log.Error(ctx, "persisting refreshed token", "err", err)
		a.store.Clear(ctx)
		return api.NewError(api.CodeUnknown, "An unexpected error has occurred, please try again later")
	}

	return nil
}

// StartupCheck decides whether a persisted token still grants access:
// absent → logged out; structurally malformed → cleared, logged out;
// otherwise the token is exchanged via Refresh and only a successful
// rotation yields a logged-in state. Verify before trust.
func (a *authService) StartupCheck(ctx context.Context) bool {
	token := a.store.Token(ctx)
	if token == "" {
		return false
	}

	if !wellFormedToken(token) {
		a.log.Warn(ctx, "stored token is malformed, clearing")
		a.store.Clear(ctx)
		return false
	}

	if err := a.Refresh(ctx); err != nil {
		a.log.Info(ctx, "startup token verification failed", "err", err)
		return false
	}
	return true
}

// wellFormedToken reports whether token parses as a JWT at all. Signature
// and expiry are the server's to judge; this only avoids a round trip for
// values that cannot possibly be tokens.
func wellFormedToken(token string) bool {
	_, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	return err == nil
}

// RetrieveUser fetches the account associated with the stored token.
func (a *authService) RetrieveUser(ctx context.Context) (*models.User, error) {
	token, err := requireToken(ctx, a.store)
	if err != nil {
		return nil, err
	}
	return a.client.RetrieveUser(ctx, token)
}

// Logout drops the stored token. Best-effort: the store swallows errors.
func (a *authService) Logout(ctx context.Context) {
	a.store.Clear(ctx)
}

// DeleteAccount removes the account on the backend and then the local
// session.
func (a *authService) DeleteAccount(ctx context.Context) error {
	token, err := requireToken(ctx, a.store)
	if err != nil {
		return err
	}
	if err := a.client.DeleteAccount(ctx, token); err != nil {
		return err
	}
	a.store.Clear(ctx)
	return nil
}

// LastUsername returns the most recently used login name, for prompts.
func (a *authService) LastUsername(ctx context.Context) string {
	return a.store.LastUsername(ctx)
}
