package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-api/internal/domain/apperrors"
	"book-api/internal/domain/entities"
)

func validUser() *entities.User {
	return entities.NewUser("John Doe", "john@example.com", "password123")
}

func Test_NewValidatedUser_Valid(t *testing.T) {
	user := validUser()

	validated, err := entities.NewValidatedUser(user)

	require.NoError(t, err)
	assert.Equal(t, user, validated.GetUser())
}

func Test_NewValidatedUser_RejectsDisplayNameEmail(t *testing.T) {
	user := validUser()

	// Only a bare address is a valid email, not the RFC 5322
	// display-name form.
	user.Email = "John Doe <john@example.com>"

	_, err := entities.NewValidatedUser(user)

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors["email"], "The email field must be a valid email address.")
}

func Test_NewValidatedUser_LengthsCountCharactersNotBytes(t *testing.T) {
	user := validUser()

	// 255 accented characters encode to 510 bytes and must still pass.
	user.Name = strings.Repeat("é", 255)
	// Eight characters, sixteen bytes.
	user.Password = "éééééééé"

	_, err := entities.NewValidatedUser(user)
	assert.NoError(t, err)

	user.Name = strings.Repeat("é", 256)
	_, err = entities.NewValidatedUser(user)

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors["name"], "The name field must not be greater than 255 characters.")
}

func Test_NewValidatedUser_ShortMultibytePassword(t *testing.T) {
	user := validUser()
	user.Password = "ééééééé"

	_, err := entities.NewValidatedUser(user)

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors["password"], "The password field must be at least 8 characters.")
}
