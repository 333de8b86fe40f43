package pagination

import "math"

const (
	// PageSize is the fixed number of rows per search page.
	PageSize = 10
	// DefaultPage is used when the request omits or mangles the page number.
	DefaultPage = 1
)

// Window is an OFFSET/LIMIT pair addressing one page of a result set.
type Window struct {
	Offset int
	Limit  int
}

// Empty reports whether the window selects no rows.
func (w Window) Empty() bool {
	return w.Limit <= 0
}

// PageWindow computes the rows selected by page over a result set truncated to
// maxResults rows (nil means untruncated). It matches slicing the truncated
// list at [start, min(start+size, maxResults)) with start = (page-1)*size.
func PageWindow(page, size int, maxResults *int) Window {
	if page < 1 {
		page = DefaultPage
	}
	if size <= 0 {
		size = PageSize
	}
	if page-1 > (math.MaxInt32-size)/size {
		return Window{}
	}

	start := (page - 1) * size
	limit := size
	if maxResults != nil {
		if start >= *maxResults {
			return Window{}
		}
		limit = min(size, *maxResults-start)
	}
	return Window{Offset: start, Limit: limit}
}
