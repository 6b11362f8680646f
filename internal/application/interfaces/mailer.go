package interfaces

import "book-api/internal/domain/entities"

// WelcomeMailer sends the post-registration greeting. Implementations are
// expected to be best-effort; failures must not fail the registration.
type WelcomeMailer interface {
	SendWelcome(user *entities.User) error
}
