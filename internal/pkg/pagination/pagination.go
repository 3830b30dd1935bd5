package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Pagination represents pagination metadata
type Pagination struct {
	Page    int   `json:"page" example:"1"`
	Limit   int   `json:"limit" example:"20"`
	Total   int64 `json:"total" example:"57"`
	Pages   int   `json:"pages" example:"3"`
	HasNext bool  `json:"hasNext" example:"true"`
	HasPrev bool  `json:"hasPrev" example:"false"`
	Offset  int   `json:"-"`
}

// New creates a new pagination instance, clamping page and limit
func New(page, limit int, total int64) *Pagination {
	page, limit = clamp(page, limit)

	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 1 {
		pages = 1
	}

	return &Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
		Offset:  (page - 1) * limit,
	}
}

// FromQuery parses the page and limit query parameters. Garbage falls back to defaults.
func FromQuery(pageStr, limitStr string) (page, limit int) {
	page, _ = strconv.Atoi(pageStr)
	limit, _ = strconv.Atoi(limitStr)
	return clamp(page, limit)
}

// Bounds returns the [start, end) slice indexes of the current page for a
// collection of n items. Past the last page both are n.
func (p *Pagination) Bounds(n int) (start, end int) {
	start = p.Offset
	if start > n {
		start = n
	}
	end = start + p.Limit
	if end > n {
		end = n
	}
	return start, end
}

func clamp(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
