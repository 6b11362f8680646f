package gormdb

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"book-api/internal/domain/apperrors"
	"book-api/internal/domain/entities"
	"book-api/internal/domain/repositories"
)

// isbnTaken reports the unique-index violation the same way the service
// pre-check does, so a concurrent duplicate insert still surfaces as a
// validation failure instead of a server error.
func isbnTaken(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		ve := apperrors.NewValidationError()
		ve.Add("isbn", "The isbn has already been taken.")
		return ve
	}
	return err
}

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) repositories.BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(book *entities.ValidatedBook) (*entities.Book, error) {
	bookEntity := book.GetBook()

	bookModel := BookModel{
		Id:        bookEntity.Id,
		CreatedAt: bookEntity.CreatedAt,
		UpdatedAt: bookEntity.UpdatedAt,
		Title:     bookEntity.Title,
		Author:    bookEntity.Author,
		Summary:   bookEntity.Summary,
		ISBN:      bookEntity.ISBN,
	}

	if err := r.db.Create(&bookModel).Error; err != nil {
		return nil, isbnTaken(err)
	}

	return r.FindById(bookEntity.Id)
}

func (r *BookRepository) FindById(id uuid.UUID) (*entities.Book, error) {
	var bookModel BookModel
	if err := r.db.Where("id = ?", id).First(&bookModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&bookModel), nil
}

func (r *BookRepository) List(offset, limit int) ([]*entities.Book, int64, error) {
	var total int64
	if err := r.db.Model(&BookModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookModels []BookModel
	if err := r.db.Order("created_at").Offset(offset).Limit(limit).Find(&bookModels).Error; err != nil {
		return nil, 0, err
	}

	books := make([]*entities.Book, 0, len(bookModels))
	for i := range bookModels {
		books = append(books, r.mapToEntity(&bookModels[i]))
	}

	return books, total, nil
}

func (r *BookRepository) Update(book *entities.ValidatedBook) (*entities.Book, error) {
	bookEntity := book.GetBook()

	bookModel := BookModel{
		Id:        bookEntity.Id,
		CreatedAt: bookEntity.CreatedAt,
		UpdatedAt: bookEntity.UpdatedAt,
		Title:     bookEntity.Title,
		Author:    bookEntity.Author,
		Summary:   bookEntity.Summary,
		ISBN:      bookEntity.ISBN,
	}

	if err := r.db.Save(&bookModel).Error; err != nil {
		return nil, isbnTaken(err)
	}

	return r.FindById(bookEntity.Id)
}

func (r *BookRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&BookModel{}, "id = ?", id).Error
}

func (r *BookRepository) ExistsByISBN(isbn string, exclude uuid.UUID) (bool, error) {
	query := r.db.Model(&BookModel{}).Where("isbn = ?", isbn)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookRepository) mapToEntity(bookModel *BookModel) *entities.Book {
	return &entities.Book{
		Id:        bookModel.Id,
		CreatedAt: bookModel.CreatedAt,
		UpdatedAt: bookModel.UpdatedAt,
		Title:     bookModel.Title,
		Author:    bookModel.Author,
		Summary:   bookModel.Summary,
		ISBN:      bookModel.ISBN,
	}
}
