package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"book-api/internal/application/command"
	"book-api/internal/application/interfaces"
	"book-api/internal/application/mapper"
	"book-api/internal/domain/apperrors"
	"book-api/internal/domain/entities"
	"book-api/internal/domain/repositories"
)

type AuthService struct {
	userRepo repositories.UserRepository
	tokens   interfaces.TokenService
	mailer   interfaces.WelcomeMailer
}

// NewAuthService wires the registration/login/logout flows. mailer may be
// nil when no mail provider is configured.
func NewAuthService(userRepo repositories.UserRepository, tokens interfaces.TokenService, mailer interfaces.WelcomeMailer) interfaces.AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
	}
}

func (s *AuthService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	user := entities.NewUser(registerCommand.Name, registerCommand.Email, registerCommand.Password)

	validatedUser, err := entities.NewValidatedUser(user)
	var ve *apperrors.ValidationError
	if err != nil && !errors.As(err, &ve) {
		return nil, err
	}

	if registerCommand.Email != "" {
		existingUser, err := s.userRepo.FindByEmail(registerCommand.Email)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			if ve == nil {
				ve = apperrors.NewValidationError()
			}
			ve.Add("email", "The email has already been taken.")
		}
	}
	if ve != nil {
		return nil, ve
	}

	createdUser, err := s.userRepo.Create(validatedUser)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(ctx, createdUser.Id)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.AddToken(ctx, createdUser.Id, token); err != nil {
		log.Printf("Failed to record token for user %s: %v", createdUser.Id, err)
	}

	if s.mailer != nil {
		go func(u *entities.User) {
			if err := s.mailer.SendWelcome(u); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", u.Email, err)
			}
		}(createdUser)
	}

	return &command.RegisterUserCommandResult{
		User:  mapper.NewUserResultFromEntity(createdUser),
		Token: token,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(loginCommand.Email)
	if err != nil {
		return nil, err
	}

	// One generic failure for unknown email and wrong password alike, so
	// responses cannot be used to enumerate accounts.
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	token, err := s.tokens.Issue(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	// Bookkeeping on the user row happens off the request path; the token
	// whitelist is already authoritative.
	go func() {
		if err := s.userRepo.AddToken(context.Background(), user.Id, token); err != nil {
			log.Printf("Failed to record token for user %s: %v", user.Id, err)
		}
	}()

	return &command.LoginUserCommandResult{Token: token}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID, token string) error {
	if err := s.tokens.Revoke(ctx, token); err != nil {
		return err
	}
	if err := s.userRepo.RemoveToken(ctx, userID, token); err != nil {
		log.Printf("Failed to drop token for user %s: %v", userID, err)
	}
	return nil
}
