package query

import "book-api/internal/application/common"

type BookQueryResult struct {
	Result *common.BookResult `json:"result"`
}

type BookPageResult struct {
	Result *common.BookPage `json:"result"`
}
