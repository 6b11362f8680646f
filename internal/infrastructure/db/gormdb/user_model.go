package gormdb

import (
	"time"

	"github.com/google/uuid"
)

// Tokens uses the json serializer instead of a postgres array so the
// sqlite driver used in tests shares the model.
type UserModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string   `gorm:"size:255;not null"`
	Email        string   `gorm:"size:255;uniqueIndex;not null"`
	Password     string   `gorm:"not null"`
	Tokens       []string `gorm:"serializer:json"`
	Professional bool     `gorm:"default:false"`
}

func (UserModel) TableName() string {
	return "users"
}
