package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-api/internal/application/command"
	"book-api/internal/application/interfaces"
	"book-api/internal/application/services"
	"book-api/internal/domain/apperrors"
	"book-api/internal/domain/repositories"
	"book-api/internal/infrastructure"
	"book-api/internal/infrastructure/db/gormdb"
)

func newAuthService(t *testing.T) (interfaces.AuthService, interfaces.TokenService, repositories.UserRepository) {
	t.Helper()
	userRepo := gormdb.NewUserRepository(newTestDB(t))
	tokens := infrastructure.NewTokenService("test-secret", newMemTokenStore())
	return services.NewAuthService(userRepo, tokens, nil), tokens, userRepo
}

func registerCommand() *command.RegisterUserCommand {
	return &command.RegisterUserCommand{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	}
}

func Test_AuthService_Register(t *testing.T) {
	auth, tokens, userRepo := newAuthService(t)
	ctx := context.Background()

	result, err := auth.Register(ctx, registerCommand())
	require.NoError(t, err)

	assert.Equal(t, "John Doe", result.User.Name)
	assert.Equal(t, "john@example.com", result.User.Email)
	require.NotEmpty(t, result.Token)

	// The fresh token resolves to the new user.
	ownerID, err := tokens.Authenticate(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.Id, ownerID)

	// The stored password is a hash, not the plaintext.
	stored, err := userRepo.FindByEmail("john@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, stored.CheckPassword("password123"))
	assert.Contains(t, stored.Tokens, result.Token)
}

func Test_AuthService_Register_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cmd *command.RegisterUserCommand)
		field   string
		message string
	}{
		{
			name:    "missing_name",
			mutate:  func(cmd *command.RegisterUserCommand) { cmd.Name = "" },
			field:   "name",
			message: "The name field is required.",
		},
		{
			name:    "invalid_email",
			mutate:  func(cmd *command.RegisterUserCommand) { cmd.Email = "not-an-email" },
			field:   "email",
			message: "The email field must be a valid email address.",
		},
		{
			name:    "short_password",
			mutate:  func(cmd *command.RegisterUserCommand) { cmd.Password = "short" },
			field:   "password",
			message: "The password field must be at least 8 characters.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			auth, _, _ := newAuthService(t)

			cmd := registerCommand()
			tc.mutate(cmd)

			_, err := auth.Register(context.Background(), cmd)

			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Errors[tc.field], tc.message)
		})
	}
}

func Test_AuthService_Register_DuplicateEmail(t *testing.T) {
	auth, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, registerCommand())
	require.NoError(t, err)

	cmd := registerCommand()
	cmd.Name = "Jane Doe"
	_, err = auth.Register(ctx, cmd)

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors["email"], "The email has already been taken.")
}

func Test_AuthService_Login(t *testing.T) {
	auth, tokens, _ := newAuthService(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, registerCommand())
	require.NoError(t, err)

	result, err := auth.Login(ctx, &command.LoginUserCommand{
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	// Every login mints a distinct credential; the registration token
	// stays valid alongside it.
	assert.NotEqual(t, registered.Token, result.Token)
	_, err = tokens.Authenticate(ctx, registered.Token)
	assert.NoError(t, err)
	_, err = tokens.Authenticate(ctx, result.Token)
	assert.NoError(t, err)
}

func Test_AuthService_Login_NoEnumeration(t *testing.T) {
	auth, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, registerCommand())
	require.NoError(t, err)

	_, wrongPassword := auth.Login(ctx, &command.LoginUserCommand{
		Email:    "john@example.com",
		Password: "wrong-password",
	})
	_, unknownEmail := auth.Login(ctx, &command.LoginUserCommand{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	// Both failures are indistinguishable.
	assert.ErrorIs(t, wrongPassword, apperrors.ErrUnauthorized)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrUnauthorized)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func Test_AuthService_Logout_RevokesOnlyPresentedToken(t *testing.T) {
	auth, tokens, _ := newAuthService(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, registerCommand())
	require.NoError(t, err)

	loggedIn, err := auth.Login(ctx, &command.LoginUserCommand{
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, registered.User.Id, registered.Token))

	// The revoked token is dead, the other session survives.
	_, err = tokens.Authenticate(ctx, registered.Token)
	assert.Error(t, err)
	_, err = tokens.Authenticate(ctx, loggedIn.Token)
	assert.NoError(t, err)
}
