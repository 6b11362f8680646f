package entities

type ValidatedBook struct {
	*Book
}

func NewValidatedBook(book *Book) (*ValidatedBook, error) {
	if err := book.validate(); err != nil {
		return nil, err
	}

	return &ValidatedBook{Book: book}, nil
}

func (vb *ValidatedBook) GetBook() *Book {
	return vb.Book
}
