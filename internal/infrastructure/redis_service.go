package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"book-api/internal/config"
	"book-api/internal/domain/entities"
)

// RedisService backs both the bearer-token whitelist and the read-through
// book cache. When the connection cannot be established the client stays
// nil and every operation degrades to a miss.
type RedisService struct {
	client  *redis.Client
	bookTTL time.Duration
}

func NewRedisService(cfg *config.Config) *RedisService {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err == nil {
			client := redis.NewClient(opt)
			if err := client.Ping(context.Background()).Err(); err != nil {
				log.Printf("Warning: Redis connection failed with REDIS_URL: %v", err)
			} else {
				log.Printf("Connected to Redis using REDIS_URL")
				return &RedisService{client: client, bookTTL: cfg.BookCacheTTL}
			}
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: Redis connection failed: %v", err)
		log.Printf("Redis will be disabled. Authenticated requests will be rejected and book reads go straight to the database.")
		return &RedisService{client: nil, bookTTL: cfg.BookCacheTTL}
	}

	log.Printf("Connected to Redis at %s:%s", cfg.RedisHost, cfg.RedisPort)
	return &RedisService{client: client, bookTTL: cfg.BookCacheTTL}
}

// Put whitelists a token. No TTL: tokens live until logout.
func (r *RedisService) Put(ctx context.Context, token, userID string) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Set(ctx, "token:"+token, userID, 0).Err()
}

func (r *RedisService) UserID(ctx context.Context, token string) (string, error) {
	if r.client == nil {
		return "", nil // Redis disabled, treat every token as revoked
	}
	result, err := r.client.Get(ctx, "token:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return result, nil
}

func (r *RedisService) Delete(ctx context.Context, token string) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Del(ctx, "token:"+token).Err()
}

func (r *RedisService) Get(ctx context.Context, id uuid.UUID) (*entities.Book, error) {
	if r.client == nil {
		return nil, nil // Redis disabled, always a miss
	}
	data, err := r.client.Get(ctx, "book:"+id.String()).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var book entities.Book
	if err := json.Unmarshal([]byte(data), &book); err != nil {
		return nil, err
	}

	return &book, nil
}

func (r *RedisService) Set(ctx context.Context, id uuid.UUID, book *entities.Book) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	data, err := json.Marshal(book)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, "book:"+id.String(), data, r.bookTTL).Err()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Close()
}
