// Package pagination holds the page stepper shared by listing pages and JSON endpoints.
package pagination

import (
	"errors"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/model/response"
)

var ErrPageOutOfRange = errors.New("page out of range")

// Control derives stepper state from the caller's page state. It keeps nothing of its own
// and only asks setPage for a new value.
type Control struct {
	Total   int
	Current int
	setPage func(int)
}

func Render(total, current int, setPage func(int)) Control {
	return Control{Total: total, Current: current, setPage: setPage}
}

func (c Control) PrevEnabled() bool {
	return c.Current > 1
}

func (c Control) NextEnabled() bool {
	return c.Current < c.Total
}

// Prev requests current-1. When disabled it returns ErrPageOutOfRange and setPage is not called.
func (c Control) Prev() error {
	if !c.PrevEnabled() {
		return ErrPageOutOfRange
	}
	c.setPage(c.Current - 1)
	return nil
}

func (c Control) Next() error {
	if !c.NextEnabled() {
		return ErrPageOutOfRange
	}
	c.setPage(c.Current + 1)
	return nil
}

// Go requests an arbitrary page within [1, Total].
func (c Control) Go(page int) error {
	if page < 1 || page > c.Total {
		return ErrPageOutOfRange
	}
	c.setPage(page)
	return nil
}

// Pages returns up to size page numbers centred on the current page.
func (c Control) Pages(size int) []int {
	if c.Total < 1 || size < 1 {
		return nil
	}
	if size > c.Total {
		size = c.Total
	}

	start := c.Current - size/2
	if start < 1 {
		start = 1
	}
	if start+size-1 > c.Total {
		start = c.Total - size + 1
	}

	pages := make([]int, size)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}

func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Normalize applies defaults and caps to page/per_page query values.
func Normalize(page, perPage, defaultPerPage, maxPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func NewInfo(page, perPage, total int) entity.PaginationInfo {
	return entity.PaginationInfo{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: TotalPages(total, perPage),
	}
}

func NewMeta(page, perPage, total int) response.PaginationMeta {
	return response.PaginationMeta{
		CurrentPage: page,
		PerPage:     perPage,
		TotalItems:  total,
		TotalPages:  TotalPages(total, perPage),
	}
}

// Slice returns the items of one page from an in-memory list.
func Slice[T any](items []T, page, perPage int) []T {
	start := (page - 1) * perPage
	if start >= len(items) || start < 0 {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
