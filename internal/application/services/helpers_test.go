package services_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"book-api/internal/domain/entities"
	"book-api/internal/infrastructure/db/gormdb"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(db))
	return db
}

// memBookCache is a TTL-less stand-in for the redis book cache.
type memBookCache struct {
	mu    sync.Mutex
	books map[uuid.UUID]*entities.Book
}

func newMemBookCache() *memBookCache {
	return &memBookCache{books: make(map[uuid.UUID]*entities.Book)}
}

func (c *memBookCache) Get(ctx context.Context, id uuid.UUID) (*entities.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.books[id], nil
}

func (c *memBookCache) Set(ctx context.Context, id uuid.UUID, book *entities.Book) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *book
	c.books[id] = &copied
	return nil
}

// memTokenStore is an in-memory token whitelist.
type memTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{tokens: make(map[string]string)}
}

func (s *memTokenStore) Put(ctx context.Context, token, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *memTokenStore) UserID(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[token], nil
}

func (s *memTokenStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
