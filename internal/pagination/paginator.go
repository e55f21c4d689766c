package pagination

// Page is one slice of an ordered result set, plus the metadata templates
// need to render pager controls.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"number"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate slices items into fixed-size pages and returns page pageNumber.
// The slice is taken from the snapshot passed in; callers must not re-query
// between computing the snapshot and paginating it.
//
// An out-of-range pageNumber is clamped to the nearest valid page. An empty
// snapshot yields a single empty page, so "/" on a fresh install still renders.
func Paginate[T any](items []T, pageSize, pageNumber int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if pageNumber < 1 {
		pageNumber = 1
	} else if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page[T]{
		Items:       items[start:end],
		Number:      pageNumber,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     pageNumber < totalPages,
		HasPrevious: pageNumber > 1,
	}
}
