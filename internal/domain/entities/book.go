package entities

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"book-api/internal/domain/apperrors"
)

type Book struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	Author    string
	Summary   string
	ISBN      string
}

func NewBook(title, author, summary, isbn string) *Book {
	now := time.Now()
	return &Book{
		Id:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Title:     title,
		Author:    author,
		Summary:   summary,
		ISBN:      isbn,
	}
}

// BookPatch carries a partial update. Only non-nil fields are validated
// and applied; a field set to its zero value on the wire is still applied
// because the pointer distinguishes "absent" from "empty".
type BookPatch struct {
	Title   *string
	Author  *string
	Summary *string
	ISBN    *string
}

func (p *BookPatch) Empty() bool {
	return p.Title == nil && p.Author == nil && p.Summary == nil && p.ISBN == nil
}

func (b *Book) ApplyPatch(patch *BookPatch) {
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Author != nil {
		b.Author = *patch.Author
	}
	if patch.Summary != nil {
		b.Summary = *patch.Summary
	}
	if patch.ISBN != nil {
		b.ISBN = *patch.ISBN
	}
	b.UpdatedAt = time.Now()
}

func (b *Book) validate() error {
	ve := apperrors.NewValidationError()
	validateBookTitle(ve, b.Title)
	validateBookAuthor(ve, b.Author)
	validateBookSummary(ve, b.Summary)
	validateBookISBN(ve, b.ISBN)
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// ValidatePatch checks only the fields present on the patch, mirroring the
// "sometimes" rules used at creation.
func (p *BookPatch) Validate() error {
	ve := apperrors.NewValidationError()
	if p.Title != nil {
		validateBookTitle(ve, *p.Title)
	}
	if p.Author != nil {
		validateBookAuthor(ve, *p.Author)
	}
	if p.Summary != nil {
		validateBookSummary(ve, *p.Summary)
	}
	if p.ISBN != nil {
		validateBookISBN(ve, *p.ISBN)
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// Length limits count characters, not bytes, so accented titles are
// measured the way users see them.
func validateBookTitle(ve *apperrors.ValidationError, title string) {
	switch {
	case title == "":
		ve.Add("title", "The title field is required.")
	case utf8.RuneCountInString(title) < 3:
		ve.Add("title", "The title field must be at least 3 characters.")
	case utf8.RuneCountInString(title) > 255:
		ve.Add("title", "The title field must not be greater than 255 characters.")
	}
}

func validateBookAuthor(ve *apperrors.ValidationError, author string) {
	switch {
	case author == "":
		ve.Add("author", "The author field is required.")
	case utf8.RuneCountInString(author) < 3:
		ve.Add("author", "The author field must be at least 3 characters.")
	case utf8.RuneCountInString(author) > 100:
		ve.Add("author", "The author field must not be greater than 100 characters.")
	}
}

func validateBookSummary(ve *apperrors.ValidationError, summary string) {
	switch {
	case summary == "":
		ve.Add("summary", "The summary field is required.")
	case utf8.RuneCountInString(summary) < 10:
		ve.Add("summary", "The summary field must be at least 10 characters.")
	case utf8.RuneCountInString(summary) > 500:
		ve.Add("summary", "The summary field must not be greater than 500 characters.")
	}
}

func validateBookISBN(ve *apperrors.ValidationError, isbn string) {
	switch {
	case isbn == "":
		ve.Add("isbn", "The isbn field is required.")
	case utf8.RuneCountInString(isbn) != 13:
		ve.Add("isbn", "The isbn field must be 13 characters.")
	}
}
