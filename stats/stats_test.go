package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/babagsm1/etsdiabalystore/catalog"
	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/orders"
	"github.com/babagsm1/etsdiabalystore/store"
	"github.com/babagsm1/etsdiabalystore/testimonials"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, ledger []models.Order) *Aggregator {
	t.Helper()
	ctx := context.Background()
	s := store.New(store.NewMemoryBackend())

	require.NoError(t, store.Save(ctx, s, store.ProductsKey, store.DefaultProducts()[:3]))
	require.NoError(t, store.Save(ctx, s, store.TestimonialsKey, []models.Testimonial{
		{ID: "1", Status: models.TestimonialApproved},
		{ID: "2", Status: models.TestimonialApproved},
		{ID: "3", Status: models.TestimonialApproved},
		{ID: "4", Status: models.TestimonialApproved},
		{ID: "5", Status: models.TestimonialPending},
		{ID: "6", Status: models.TestimonialRejected},
	}))
	require.NoError(t, store.Save(ctx, s, store.OrdersKey, ledger))

	return NewAggregator(
		catalog.NewRepository(s, 0),
		orders.NewLedger(s, nil),
		testimonials.NewQueue(s),
	)
}

func TestComputeExcludesCancelledRevenue(t *testing.T) {
	agg := seed(t, []models.Order{
		{ID: "p1", Status: models.StatusPending},
		{ID: "p2", Status: models.StatusPending},
		{ID: "c1", Status: models.StatusCancelled, Total: 300},
		{ID: "d1", Status: models.StatusDelivered, Total: 700},
	})

	got, err := agg.Compute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ShopStats{
		ProductCount:       3,
		PendingOrdersCount: 2,
		TestimonialCount:   4,
		TotalRevenue:       700,
	}, got)
}

func TestComputeCountsEveryNonCancelledStatus(t *testing.T) {
	agg := seed(t, []models.Order{
		{ID: "a", Status: models.StatusPending, Total: 100},
		{ID: "b", Status: models.StatusProcessing, Total: 200},
		{ID: "c", Status: models.StatusShipped, Total: 400},
		{ID: "d", Status: models.StatusCancelled, Total: 800},
	})

	got, err := agg.Compute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(700), got.TotalRevenue)
	assert.Equal(t, 1, got.PendingOrdersCount)
}

func TestComputeRecomputesOnEachCall(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryBackend())
	require.NoError(t, s.Init(ctx))
	ledger := orders.NewLedger(s, nil)
	agg := NewAggregator(catalog.NewRepository(s, 0), ledger, testimonials.NewQueue(s))

	before, err := agg.Compute(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ShopStats{ProductCount: 8, TestimonialCount: 5}, before)

	_, err = ledger.Create(ctx, []models.CartItem{{Product: store.DefaultProducts()[5], Quantity: 2}}, models.CustomerInfo{Name: "A"})
	require.NoError(t, err)

	after, err := agg.Compute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, after.PendingOrdersCount)
	assert.Equal(t, int64(190000), after.TotalRevenue)
}

type brokenOrders struct{}

func (brokenOrders) ListAll(context.Context) ([]models.Order, error) {
	return nil, models.ErrSerialization
}

func (brokenOrders) ListPending(context.Context) ([]models.Order, error) {
	return nil, models.ErrSerialization
}

func TestComputePropagatesErrors(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	agg := NewAggregator(catalog.NewRepository(s, 0), brokenOrders{}, testimonials.NewQueue(s))

	_, err := agg.Compute(context.Background())
	assert.True(t, errors.Is(err, models.ErrSerialization))
}

// stubOrders returns a pending list that disagrees with the full list, so the
// pending figure can only come from ListPending.
type stubOrders struct {
	all     []models.Order
	pending []models.Order
}

func (s stubOrders) ListAll(context.Context) ([]models.Order, error) {
	return s.all, nil
}

func (s stubOrders) ListPending(context.Context) ([]models.Order, error) {
	return s.pending, nil
}

func TestPendingCountComesFromLedgerFilter(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	orderList := stubOrders{
		all: []models.Order{{ID: "a", Status: models.StatusDelivered, Total: 50}},
		pending: []models.Order{
			{ID: "x", Status: models.StatusPending},
			{ID: "y", Status: models.StatusPending},
		},
	}
	agg := NewAggregator(catalog.NewRepository(s, 0), orderList, testimonials.NewQueue(s))

	got, err := agg.Compute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, got.PendingOrdersCount)
	assert.Equal(t, int64(50), got.TotalRevenue)
}
