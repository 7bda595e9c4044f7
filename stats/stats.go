// Package stats derives the admin dashboard figures. Nothing is cached; every call
// rescans the collections.
package stats

import (
	"context"

	"github.com/babagsm1/etsdiabalystore/models"
)

type ProductLister interface {
	ListAll(ctx context.Context) ([]models.Product, error)
}

type OrderLister interface {
	ListAll(ctx context.Context) ([]models.Order, error)
	ListPending(ctx context.Context) ([]models.Order, error)
}

type TestimonialLister interface {
	ListApproved(ctx context.Context) ([]models.Testimonial, error)
}

type Aggregator struct {
	products     ProductLister
	orders       OrderLister
	testimonials TestimonialLister
}

func NewAggregator(products ProductLister, orders OrderLister, testimonials TestimonialLister) *Aggregator {
	return &Aggregator{
		products:     products,
		orders:       orders,
		testimonials: testimonials,
	}
}

// Compute counts products, pending orders and approved testimonials, and sums the
// totals of every order that was not cancelled.
func (a *Aggregator) Compute(ctx context.Context) (models.ShopStats, error) {
	products, err := a.products.ListAll(ctx)
	if err != nil {
		return models.ShopStats{}, err
	}
	orders, err := a.orders.ListAll(ctx)
	if err != nil {
		return models.ShopStats{}, err
	}
	pending, err := a.orders.ListPending(ctx)
	if err != nil {
		return models.ShopStats{}, err
	}
	approved, err := a.testimonials.ListApproved(ctx)
	if err != nil {
		return models.ShopStats{}, err
	}

	s := models.ShopStats{
		ProductCount:       len(products),
		PendingOrdersCount: len(pending),
		TestimonialCount:   len(approved),
	}
	for _, o := range orders {
		if o.Status != models.StatusCancelled {
			s.TotalRevenue += o.Total
		}
	}
	return s, nil
}
