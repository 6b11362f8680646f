package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	SendgridAPIKey string
	MailSenderName string
	MailSenderAddr string

	// BookCacheTTL bounds how stale a cached single-book read can be.
	BookCacheTTL time.Duration

	// LoginRateLimit is the number of login attempts allowed per client
	// per LoginRateWindow before requests are rejected with 429.
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	return &Config{
		Port:        GetEnvAsString("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisHost:     GetEnvAsString("REDIS_HOST", "localhost"),
		RedisPort:     GetEnvAsString("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),

		JWTSecret: os.Getenv("JWT_SECRET"),

		SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailSenderName: GetEnvAsString("MAIL_SENDER_NAME", "Book API"),
		MailSenderAddr: GetEnvAsString("MAIL_SENDER_ADDR", "noreply@localhost"),

		BookCacheTTL: GetEnvAsDuration("BOOK_CACHE_TTL", 3600*time.Second),

		LoginRateLimit:  GetEnvAsInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow: GetEnvAsDuration("LOGIN_RATE_WINDOW", time.Minute),
	}
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
