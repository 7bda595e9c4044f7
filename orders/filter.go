package orders

import (
	"context"
	"slices"
	"strings"

	"github.com/babagsm1/etsdiabalystore/models"
)

// Filter narrows the admin order list. Zero fields match everything.
type Filter struct {
	// Search matches order id, customer name or customer email, ignoring case.
	Search string
	Status models.OrderStatus
}

func (f Filter) match(o models.Order) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.ID), term) ||
		strings.Contains(strings.ToLower(o.CustomerInfo.Name), term) ||
		strings.Contains(strings.ToLower(o.CustomerInfo.Email), term)
}

func (l *Ledger) Filter(ctx context.Context, f Filter) ([]models.Order, error) {
	orders, err := l.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if f.match(o) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// SortNewestFirst orders by creation date, most recent first.
func SortNewestFirst(orders []models.Order) {
	slices.SortStableFunc(orders, func(a, b models.Order) int {
		return b.Date.Compare(a.Date)
	})
}
