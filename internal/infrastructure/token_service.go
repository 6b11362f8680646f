package infrastructure

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"book-api/internal/application/interfaces"
	"book-api/internal/domain/repositories"
)

var errInvalidToken = errors.New("invalid token")

// TokenService signs bearer tokens with HS256 and whitelists them in the
// store. A token is only accepted while its whitelist entry exists, so
// revocation works even though the signature stays valid. No exp claim:
// tokens do not expire, they are revoked at logout.
type TokenService struct {
	secretKey []byte
	store     repositories.TokenStore
}

func NewTokenService(secretKey string, store repositories.TokenStore) interfaces.TokenService {
	return &TokenService{
		secretKey: []byte(secretKey),
		store:     store,
	}
}

func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		// jti makes every login yield a distinct credential.
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	if err := s.store.Put(ctx, signed, userID.String()); err != nil {
		return "", err
	}

	return signed, nil
}

func (s *TokenService) Authenticate(ctx context.Context, raw string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, errInvalidToken
	}

	ownerID, err := s.store.UserID(ctx, raw)
	if err != nil {
		return uuid.Nil, err
	}
	if ownerID == "" {
		return uuid.Nil, errInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errInvalidToken
	}
	claimedID, _ := claims["user_id"].(string)
	if claimedID != ownerID {
		return uuid.Nil, errInvalidToken
	}

	return uuid.Parse(ownerID)
}

func (s *TokenService) Revoke(ctx context.Context, raw string) error {
	return s.store.Delete(ctx, raw)
}
