package gormdb

import (
	"time"

	"github.com/google/uuid"
)

// BookModel has no soft-delete column: deletes are permanent.
type BookModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string `gorm:"size:255;not null"`
	Author    string `gorm:"size:100;not null"`
	Summary   string `gorm:"size:500;not null"`
	ISBN      string `gorm:"column:isbn;size:13;uniqueIndex;not null"`
}

func (BookModel) TableName() string {
	return "books"
}
