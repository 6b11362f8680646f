package interfaces

import (
	"context"

	"github.com/google/uuid"

	"book-api/internal/application/command"
)

type AuthService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)

	// Logout revokes exactly the presented token; other sessions of the
	// same user stay valid.
	Logout(ctx context.Context, userID uuid.UUID, token string) error
}
