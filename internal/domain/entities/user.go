package entities

import (
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"book-api/internal/domain/apperrors"
)

type User struct {
	Id           uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string
	Email        string
	Password     string
	Tokens       []string
	Professional bool
}

func NewUser(name, email, password string) *User {
	now := time.Now()
	return &User{
		Id:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         name,
		Email:        email,
		Password:     password,
		Tokens:       make([]string, 0),
		Professional: IsOrganizationalEmail(email),
	}
}

func (u *User) validate() error {
	ve := apperrors.NewValidationError()
	switch {
	case u.Name == "":
		ve.Add("name", "The name field is required.")
	case utf8.RuneCountInString(u.Name) > 255:
		ve.Add("name", "The name field must not be greater than 255 characters.")
	}
	switch {
	case u.Email == "":
		ve.Add("email", "The email field is required.")
	case utf8.RuneCountInString(u.Email) > 255:
		ve.Add("email", "The email field must not be greater than 255 characters.")
	default:
		// Only a bare address validates; the display-name form
		// "Name <addr>" that ParseAddress also accepts does not.
		if addr, err := mail.ParseAddress(u.Email); err != nil || addr.Address != u.Email {
			ve.Add("email", "The email field must be a valid email address.")
		}
	}
	switch {
	case u.Password == "":
		ve.Add("password", "The password field is required.")
	case utf8.RuneCountInString(u.Password) < 8:
		ve.Add("password", "The password field must be at least 8 characters.")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// HashPassword replaces the plaintext password with its bcrypt digest.
// Must be called exactly once, before the user is persisted.
func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// UsesProfessionalEmail reports whether the user registered with an
// address outside the known consumer webmail providers.
func (u *User) UsesProfessionalEmail() bool {
	return IsOrganizationalEmail(u.Email)
}

func (u *User) AddToken(token string) {
	u.Tokens = append(u.Tokens, token)
	u.UpdatedAt = time.Now()
}

func (u *User) RemoveToken(token string) {
	kept := u.Tokens[:0]
	for _, t := range u.Tokens {
		if t != token {
			kept = append(kept, t)
		}
	}
	u.Tokens = kept
	u.UpdatedAt = time.Now()
}
