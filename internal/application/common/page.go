package common

// BookPage is the paginated collection envelope: data plus navigation
// links and counters.
type BookPage struct {
	Data  []*BookResult `json:"data"`
	Links PageLinks     `json:"links"`
	Meta  PageMeta      `json:"meta"`
}

type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type PageMeta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          *int   `json:"to"`
	Total       int64  `json:"total"`
}
