package mapper

import (
	"fmt"

	"book-api/internal/application/common"
	"book-api/internal/domain/entities"
)

func NewBookResultFromEntity(book *entities.Book) *common.BookResult {
	return &common.BookResult{
		Id:        book.Id,
		Title:     book.Title,
		Author:    book.Author,
		Summary:   book.Summary,
		ISBN:      book.ISBN,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

// NewBookPage assembles the collection envelope for one page of books.
// total is the full row count, page is 1-based.
func NewBookPage(books []*entities.Book, total int64, page, perPage int, path string) *common.BookPage {
	data := make([]*common.BookResult, 0, len(books))
	for _, b := range books {
		data = append(data, NewBookResultFromEntity(b))
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	pageURL := func(p int) string {
		return fmt.Sprintf("%s?page=%d", path, p)
	}

	links := common.PageLinks{
		First: pageURL(1),
		Last:  pageURL(lastPage),
	}
	if page > 1 {
		prev := pageURL(page - 1)
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageURL(page + 1)
		links.Next = &next
	}

	meta := common.PageMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		Path:        path,
		PerPage:     perPage,
		Total:       total,
	}
	if len(data) > 0 {
		from := (page-1)*perPage + 1
		to := from + len(data) - 1
		meta.From = &from
		meta.To = &to
	}

	return &common.BookPage{Data: data, Links: links, Meta: meta}
}
