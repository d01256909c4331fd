package paging

// FirstCursor is the cursor that starts a paging session.
const FirstCursor = 0

// Page is one fetched slice of results. NextCursor is nil once the upstream
// sequence is exhausted.
type Page[T any] struct {
	Items      []T  `json:"items"`
	NextCursor *int `json:"nextCursor"`
}

// HasNext reports whether another page can be requested.
func (p Page[T]) HasNext() bool {
	return p.NextCursor != nil
}

// NewPage builds a Page, normalizing nil items to an empty slice.
func NewPage[T any](items []T, next *int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, NextCursor: next}
}
