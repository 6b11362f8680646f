package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// TokenService issues and revokes the opaque bearer credentials backing
// authenticated sessions.
type TokenService interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)

	// Authenticate resolves a presented token to its owner, failing for
	// unknown, malformed or revoked tokens.
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)

	Revoke(ctx context.Context, token string) error
}
