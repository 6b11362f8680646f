package common

import (
	"time"

	"github.com/google/uuid"
)

// UserResult is the sanitized user representation. The password hash is
// never part of it.
type UserResult struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
