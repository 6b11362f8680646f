package repositories

import (
	"context"

	"github.com/google/uuid"

	"book-api/internal/domain/entities"
)

// BookCache is the read-through cache for single-book lookups. Entries
// expire on a fixed TTL and are never invalidated on update or delete, so
// reads may be stale for up to the TTL window after a mutation.
type BookCache interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context, id uuid.UUID) (*entities.Book, error)
	Set(ctx context.Context, id uuid.UUID, book *entities.Book) error
}
