package util

// DefaultPageSize is the row count of every list screen.
const DefaultPageSize = 10

// Page is one slice of a locally paginated list.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
	// From and To are 1-based item positions for the "Showing x to y of z" line.
	From int
	To   int
}

// Paginate returns the requested page of items. The page number is clamped
// into [1, TotalPages]; an empty list yields page 1 of 0.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	p := Page[T]{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
	if total == 0 {
		p.Items = []T{}

		return p
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	p.Items = items[start:end]
	p.From = start + 1
	p.To = end

	return p
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

// PrevPage is the previous page number, never below 1.
func (p Page[T]) PrevPage() int { return max(p.Page-1, 1) }

// NextPage is the next page number, never above TotalPages.
func (p Page[T]) NextPage() int { return max(min(p.Page+1, p.TotalPages), 1) }

// Window returns at most size page numbers for the pager: the first pages
// near the start, the last pages near the end, otherwise centered on the
// current page.
func (p Page[T]) Window(size int) []int {
	if size <= 0 || p.TotalPages == 0 {
		return nil
	}

	if p.TotalPages <= size {
		return pageRange(1, p.TotalPages)
	}

	half := size / 2
	switch {
	case p.Page <= half+1:
		return pageRange(1, size)
	case p.Page >= p.TotalPages-half:
		return pageRange(p.TotalPages-size+1, p.TotalPages)
	default:
		start := p.Page - half

		return pageRange(start, start+size-1)
	}
}

func pageRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}

	return out
}
