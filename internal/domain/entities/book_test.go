package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-api/internal/domain/apperrors"
	"book-api/internal/domain/entities"
)

func validBook() *entities.Book {
	return entities.NewBook("Le Petit Prince", "Antoine de Saint-Exupéry",
		"Un aviateur échoué dans le désert rencontre un jeune prince venu d'une autre planète.",
		"9782070612758")
}

func Test_NewValidatedBook_Valid(t *testing.T) {
	book := validBook()

	validated, err := entities.NewValidatedBook(book)

	require.NoError(t, err)
	assert.Equal(t, book, validated.GetBook())
	assert.NotEqual(t, "", book.Id.String())
	assert.False(t, book.CreatedAt.IsZero())
}

func Test_NewValidatedBook_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *entities.Book)
		field   string
		message string
	}{
		{
			name:    "missing_title",
			mutate:  func(b *entities.Book) { b.Title = "" },
			field:   "title",
			message: "The title field is required.",
		},
		{
			name:    "short_title",
			mutate:  func(b *entities.Book) { b.Title = "ab" },
			field:   "title",
			message: "The title field must be at least 3 characters.",
		},
		{
			name:    "long_title",
			mutate:  func(b *entities.Book) { b.Title = strings.Repeat("a", 256) },
			field:   "title",
			message: "The title field must not be greater than 255 characters.",
		},
		{
			// Two characters even though the encoding is four bytes.
			name:    "short_title_multibyte",
			mutate:  func(b *entities.Book) { b.Title = "éé" },
			field:   "title",
			message: "The title field must be at least 3 characters.",
		},
		{
			name:    "long_title_multibyte",
			mutate:  func(b *entities.Book) { b.Title = strings.Repeat("é", 256) },
			field:   "title",
			message: "The title field must not be greater than 255 characters.",
		},
		{
			name:    "short_author",
			mutate:  func(b *entities.Book) { b.Author = "ab" },
			field:   "author",
			message: "The author field must be at least 3 characters.",
		},
		{
			name:    "long_author",
			mutate:  func(b *entities.Book) { b.Author = strings.Repeat("a", 101) },
			field:   "author",
			message: "The author field must not be greater than 100 characters.",
		},
		{
			name:    "short_summary",
			mutate:  func(b *entities.Book) { b.Summary = "too short" },
			field:   "summary",
			message: "The summary field must be at least 10 characters.",
		},
		{
			name:    "long_summary",
			mutate:  func(b *entities.Book) { b.Summary = strings.Repeat("a", 501) },
			field:   "summary",
			message: "The summary field must not be greater than 500 characters.",
		},
		{
			name:    "missing_isbn",
			mutate:  func(b *entities.Book) { b.ISBN = "" },
			field:   "isbn",
			message: "The isbn field is required.",
		},
		{
			name:    "isbn_wrong_length",
			mutate:  func(b *entities.Book) { b.ISBN = "123456789" },
			field:   "isbn",
			message: "The isbn field must be 13 characters.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			book := validBook()
			tc.mutate(book)

			_, err := entities.NewValidatedBook(book)

			require.Error(t, err)
			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Errors[tc.field], tc.message)
		})
	}
}

func Test_NewValidatedBook_LengthsCountCharactersNotBytes(t *testing.T) {
	book := validBook()

	// 255 accented characters encode to 510 bytes and must still pass.
	book.Title = strings.Repeat("é", 255)

	_, err := entities.NewValidatedBook(book)

	assert.NoError(t, err)
}

func Test_NewValidatedBook_CollectsAllFieldErrors(t *testing.T) {
	book := entities.NewBook("", "", "", "")

	_, err := entities.NewValidatedBook(book)

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 4)
	assert.Contains(t, ve.Message(), "The title field is required.")
	assert.Contains(t, ve.Message(), "more errors")
}

func Test_BookPatch_AppliesOnlyPresentFields(t *testing.T) {
	book := validBook()
	originalAuthor := book.Author
	originalISBN := book.ISBN

	newTitle := "Vol de nuit"
	patch := &entities.BookPatch{Title: &newTitle}

	require.NoError(t, patch.Validate())
	book.ApplyPatch(patch)

	assert.Equal(t, "Vol de nuit", book.Title)
	assert.Equal(t, originalAuthor, book.Author)
	assert.Equal(t, originalISBN, book.ISBN)
}

func Test_BookPatch_ValidatesOnlyPresentFields(t *testing.T) {
	shortTitle := "ab"
	patch := &entities.BookPatch{Title: &shortTitle}

	err := patch.Validate()

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 1)
	assert.Contains(t, ve.Errors["title"], "The title field must be at least 3 characters.")

	// Absent fields are not validated at all.
	assert.NoError(t, (&entities.BookPatch{}).Validate())
}

func Test_BookPatch_PresentEmptyFieldIsInvalid(t *testing.T) {
	empty := ""
	patch := &entities.BookPatch{ISBN: &empty}

	err := patch.Validate()

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors["isbn"], "The isbn field is required.")
}
