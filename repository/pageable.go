package repository

import (
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm/clause"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Order struct {
	Property string
	Desc     bool
}

// Pageable is a zero-based page request.
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

// Normalize clamps negative or unreachable pages and out-of-range sizes.
func (p Pageable) Normalize() Pageable {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	// keeps Offset from overflowing
	if p.Page > math.MaxInt/p.Size {
		p.Page = math.MaxInt / p.Size
	}
	return p
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// Columns resolves the requested order against the allowed properties.
// Without an explicit order rows come back by id.
func (p Pageable) Columns(sortable map[string]string) ([]clause.OrderByColumn, error) {
	if len(p.Sort) == 0 {
		return []clause.OrderByColumn{orderBy("id", false)}, nil
	}
	orders := make([]clause.OrderByColumn, 0, len(p.Sort)+1)
	for _, o := range p.Sort {
		column, ok := sortable[o.Property]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSortProperty, o.Property)
		}
		orders = append(orders, orderBy(column, o.Desc))
	}
	return append(orders, orderBy("id", false)), nil
}

// ParseSort reads Spring-style sort parameters: "title", "title,desc".
func ParseSort(values []string) []Order {
	var orders []Order
	for _, v := range values {
		parts := strings.Split(v, ",")
		property := strings.TrimSpace(parts[0])
		if property == "" {
			continue
		}
		order := Order{Property: property}
		if len(parts) > 1 {
			order.Desc = strings.EqualFold(strings.TrimSpace(parts[1]), "desc")
		}
		orders = append(orders, order)
	}
	return orders
}
