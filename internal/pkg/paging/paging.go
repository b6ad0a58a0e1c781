package paging

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Clamp normalises page/limit: non-positive values fall back to defaults and
// limit is capped at MaxLimit.
func Clamp(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Slice returns the requested page of items. A page past the end is empty,
// not an error.
func Slice[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages computes the page count for a total row count.
func TotalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
