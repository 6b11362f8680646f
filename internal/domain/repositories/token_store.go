package repositories

import "context"

// TokenStore is the whitelist backing bearer-token validity. A token is
// live exactly while its entry exists; revocation deletes the entry.
type TokenStore interface {
	Put(ctx context.Context, token, userID string) error

	// UserID returns the owner of a live token, or "" when the token is
	// unknown or revoked.
	UserID(ctx context.Context, token string) (string, error)

	Delete(ctx context.Context, token string) error
}
