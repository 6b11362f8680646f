package command

import "book-api/internal/application/common"

type CreateBookCommand struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Summary string `json:"summary"`
	ISBN    string `json:"isbn"`
}

type CreateBookCommandResult struct {
	Result *common.BookResult `json:"result"`
}
