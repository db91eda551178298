// Package dataset holds the attraction table loaded once at startup.
package dataset

import (
	"strings"

	"tripplanner/internal/domain"
)

// Table is an immutable, in-memory attraction table. Safe for concurrent reads.
type Table struct {
	rows []domain.Attraction
}

func New(rows []domain.Attraction) *Table {
	cp := make([]domain.Attraction, len(rows))
	copy(cp, rows)
	return &Table{rows: cp}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Rows returns a copy of every row in load order.
func (t *Table) Rows() []domain.Attraction {
	if t == nil {
		return nil
	}
	out := make([]domain.Attraction, len(t.rows))
	copy(out, t.rows)
	return out
}

// Match implements domain.AttractionCatalog. A nil table reports ErrDatasetUnavailable.
func (t *Table) Match(city, typ string) ([]domain.Attraction, error) {
	if t == nil {
		return nil, domain.ErrDatasetUnavailable
	}
	c, ty := strings.ToLower(city), strings.ToLower(typ)
	var out []domain.Attraction
	for _, a := range t.rows {
		if strings.Contains(strings.ToLower(a.City), c) && strings.Contains(strings.ToLower(a.Type), ty) {
			out = append(out, a)
		}
	}
	return out, nil
}
