package repo

import (
	"strings"

	"github.com/rogerio-castellano/ims-backend/internal/models"
)

const (
	DefaultPage     = 0
	DefaultPageSize = 10
)

// Page is a pagination descriptor. Zero-based page number.
type Page struct {
	Number int
	Size   int
}

// NewPage applies the defaults (page 0, size 10) for unset values. It does not
// normalize negative input; that validation belongs to the HTTP layer.
func NewPage(number, size *int) Page {
	p := Page{Number: DefaultPage, Size: DefaultPageSize}
	if number != nil {
		p.Number = *number
	}
	if size != nil {
		p.Size = *size
	}
	return p
}

func (p Page) Offset() int {
	return p.Number * p.Size
}

// Slice applies the page bounds to a slice length, returning [start, end).
func (p Page) Slice(length int) (int, int) {
	start := clamp(p.Offset(), 0, length)
	end := clamp(start+p.Size, start, length)
	return start, end
}

// ProductFilter is an ephemeral query descriptor. Absent criteria impose no
// constraint; an empty filter matches every product. It stays store-agnostic:
// the in-memory store evaluates the predicate closures, the Postgres store
// translates the same fields to SQL.
type ProductFilter struct {
	Name       string
	Categories []models.Category
	MinPrice   *float64
	MaxPrice   *float64
	Page       Page
}

// Predicates returns one closure per present criterion; the filter matches a
// product when all of them do.
func (f ProductFilter) Predicates() []func(models.Product) bool {
	var preds []func(models.Product) bool

	if f.Name != "" {
		name := strings.ToLower(f.Name)
		preds = append(preds, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), name)
		})
	}
	if len(f.Categories) > 0 {
		categories := f.Categories
		preds = append(preds, func(p models.Product) bool {
			for _, c := range categories {
				if p.Category == c {
					return true
				}
			}
			return false
		})
	}
	if f.MinPrice != nil {
		min := *f.MinPrice
		preds = append(preds, func(p models.Product) bool { return p.Price >= min })
	}
	if f.MaxPrice != nil {
		max := *f.MaxPrice
		preds = append(preds, func(p models.Product) bool { return p.Price <= max })
	}

	return preds
}

// Matches reports whether the product satisfies every present criterion.
func (f ProductFilter) Matches(p models.Product) bool {
	for _, pred := range f.Predicates() {
		if !pred(p) {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
