package repositories

import (
	"github.com/google/uuid"

	"book-api/internal/domain/entities"
)

type BookRepository interface {
	Create(book *entities.ValidatedBook) (*entities.Book, error)
	FindById(id uuid.UUID) (*entities.Book, error)

	// List returns one page of books in insertion order plus the total count.
	List(offset, limit int) ([]*entities.Book, int64, error)

	Update(book *entities.ValidatedBook) (*entities.Book, error)
	Delete(id uuid.UUID) error

	// ExistsByISBN reports whether another book already uses the ISBN.
	// Rows matching exclude are ignored; pass uuid.Nil on creation.
	ExistsByISBN(isbn string, exclude uuid.UUID) (bool, error)
}
