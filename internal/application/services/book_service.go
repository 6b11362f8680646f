package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"book-api/internal/application/command"
	"book-api/internal/application/interfaces"
	"book-api/internal/application/mapper"
	"book-api/internal/application/query"
	"book-api/internal/domain/apperrors"
	"book-api/internal/domain/entities"
	"book-api/internal/domain/repositories"
)

const (
	DefaultPageSize = 10

	booksPath = "/books"
)

type BookService struct {
	bookRepo repositories.BookRepository
	cache    repositories.BookCache
}

func NewBookService(bookRepo repositories.BookRepository, cache repositories.BookCache) interfaces.BookService {
	return &BookService{
		bookRepo: bookRepo,
		cache:    cache,
	}
}

func (s *BookService) List(ctx context.Context, page, perPage int) (*query.BookPageResult, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPageSize
	}

	books, total, err := s.bookRepo.List((page-1)*perPage, perPage)
	if err != nil {
		return nil, err
	}

	return &query.BookPageResult{
		Result: mapper.NewBookPage(books, total, page, perPage, booksPath),
	}, nil
}

// Get serves single-book reads through the cache. Entries expire on a
// fixed TTL and are not invalidated by Update or Delete, so a read can be
// stale for up to the TTL window after a mutation.
func (s *BookService) Get(ctx context.Context, id uuid.UUID) (*query.BookQueryResult, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		log.Printf("Failed to read book %s from cache: %v", id, err)
	}
	if cached != nil {
		return &query.BookQueryResult{Result: mapper.NewBookResultFromEntity(cached)}, nil
	}

	book, err := s.bookRepo.FindById(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperrors.ErrNotFound
	}

	if err := s.cache.Set(ctx, id, book); err != nil {
		log.Printf("Failed to cache book %s: %v", id, err)
	}

	return &query.BookQueryResult{Result: mapper.NewBookResultFromEntity(book)}, nil
}

func (s *BookService) Create(ctx context.Context, createCommand *command.CreateBookCommand) (*command.CreateBookCommandResult, error) {
	book := entities.NewBook(createCommand.Title, createCommand.Author, createCommand.Summary, createCommand.ISBN)

	validatedBook, err := entities.NewValidatedBook(book)
	var ve *apperrors.ValidationError
	if err != nil && !errors.As(err, &ve) {
		return nil, err
	}

	// The uniqueness rule only applies once the ISBN is shaped right.
	if len(createCommand.ISBN) == 13 {
		taken, err := s.bookRepo.ExistsByISBN(createCommand.ISBN, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if taken {
			if ve == nil {
				ve = apperrors.NewValidationError()
			}
			ve.Add("isbn", "The isbn has already been taken.")
		}
	}
	if ve != nil {
		return nil, ve
	}

	createdBook, err := s.bookRepo.Create(validatedBook)
	if err != nil {
		return nil, err
	}

	return &command.CreateBookCommandResult{
		Result: mapper.NewBookResultFromEntity(createdBook),
	}, nil
}

func (s *BookService) Update(ctx context.Context, id uuid.UUID, updateCommand *command.UpdateBookCommand) (*command.UpdateBookCommandResult, error) {
	book, err := s.bookRepo.FindById(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperrors.ErrNotFound
	}

	patch := updateCommand.ToPatch()

	var ve *apperrors.ValidationError
	if err := patch.Validate(); err != nil && !errors.As(err, &ve) {
		return nil, err
	}

	// Uniqueness excludes the book's own row, so re-submitting the
	// current ISBN is allowed.
	if patch.ISBN != nil && len(*patch.ISBN) == 13 {
		taken, err := s.bookRepo.ExistsByISBN(*patch.ISBN, id)
		if err != nil {
			return nil, err
		}
		if taken {
			if ve == nil {
				ve = apperrors.NewValidationError()
			}
			ve.Add("isbn", "The isbn has already been taken.")
		}
	}
	if ve != nil {
		return nil, ve
	}

	book.ApplyPatch(patch)
	validatedBook, err := entities.NewValidatedBook(book)
	if err != nil {
		return nil, err
	}

	updatedBook, err := s.bookRepo.Update(validatedBook)
	if err != nil {
		return nil, err
	}

	return &command.UpdateBookCommandResult{
		Result: mapper.NewBookResultFromEntity(updatedBook),
	}, nil
}

func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	book, err := s.bookRepo.FindById(id)
	if err != nil {
		return err
	}
	if book == nil {
		return apperrors.ErrNotFound
	}

	return s.bookRepo.Delete(id)
}
