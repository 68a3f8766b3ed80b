package pagination

// Defaults applied when a caller leaves paging unset.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Meta mirrors the CMS pagination block.
type Meta struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// Page represents one page of view models plus its pagination metadata.
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"pagination"`
}

// Normalize clamps page and size into the accepted range.
func Normalize(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

// PageCount returns how many pages hold total items at the given size, never less than one.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// Map converts every item of a page while keeping its metadata.
func Map[T, U any](in Page[T], fn func(T) U) Page[U] {
	out := Page[U]{Items: make([]U, 0, len(in.Items)), Meta: in.Meta}
	for _, item := range in.Items {
		out.Items = append(out.Items, fn(item))
	}
	return out
}
