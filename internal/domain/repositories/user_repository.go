package repositories

import (
	"context"

	"github.com/google/uuid"

	"book-api/internal/domain/entities"
)

type UserRepository interface {
	Create(user *entities.ValidatedUser) (*entities.User, error)
	FindById(id uuid.UUID) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	AddToken(ctx context.Context, userID uuid.UUID, token string) error
	RemoveToken(ctx context.Context, userID uuid.UUID, token string) error
}
