package catalog

import "github.com/angelmondragon/supercompare-api/pkg/pagination"

// SearchParams is the parsed form of the /api/search query string.
type SearchParams struct {
	// Query is matched as a literal substring of the product title. Empty matches all.
	Query string
	// MaxResults caps the matched set; nil means no cap.
	MaxResults *int
	// OrderByPrice sorts ascending by price; otherwise results keep id order.
	OrderByPrice bool
	// Page is 1-based.
	Page int
}

// DefaultSearchParams matches every product, uncapped, on the first page.
func DefaultSearchParams() SearchParams {
	return SearchParams{Page: pagination.DefaultPage}
}
