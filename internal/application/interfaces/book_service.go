package interfaces

import (
	"context"

	"github.com/google/uuid"

	"book-api/internal/application/command"
	"book-api/internal/application/query"
)

type BookService interface {
	List(ctx context.Context, page, perPage int) (*query.BookPageResult, error)
	Get(ctx context.Context, id uuid.UUID) (*query.BookQueryResult, error)
	Create(ctx context.Context, createCommand *command.CreateBookCommand) (*command.CreateBookCommandResult, error)
	Update(ctx context.Context, id uuid.UUID, updateCommand *command.UpdateBookCommand) (*command.UpdateBookCommandResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
