package command

import (
	"book-api/internal/application/common"
	"book-api/internal/domain/entities"
)

// UpdateBookCommand uses pointers so an absent field can be told apart
// from one explicitly set to its zero value. Only present fields are
// validated and applied.
type UpdateBookCommand struct {
	Title   *string `json:"title"`
	Author  *string `json:"author"`
	Summary *string `json:"summary"`
	ISBN    *string `json:"isbn"`
}

func (c *UpdateBookCommand) ToPatch() *entities.BookPatch {
	return &entities.BookPatch{
		Title:   c.Title,
		Author:  c.Author,
		Summary: c.Summary,
		ISBN:    c.ISBN,
	}
}

type UpdateBookCommandResult struct {
	Result *common.BookResult `json:"result"`
}
