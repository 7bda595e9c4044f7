package orders

import (
	"context"
	"testing"
	"time"

	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(store.New(store.NewMemoryBackend()), nil)
	items := []models.CartItem{{Product: product("a", 10), Quantity: 1}}

	afi, err := ledger.Create(ctx, items, customer)
	require.NoError(t, err)
	kofi, err := ledger.Create(ctx, items, models.CustomerInfo{Name: "Kofi Agbeko", Email: "kofi@mail.tg"})
	require.NoError(t, err)
	require.NoError(t, ledger.SetStatus(ctx, kofi.ID, models.StatusShipped))

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"everything", Filter{}, []string{afi.ID, kofi.ID}},
		{"by name", Filter{Search: "KOFI"}, []string{kofi.ID}},
		{"by email", Filter{Search: "example.com"}, []string{afi.ID}},
		{"by id", Filter{Search: afi.ID[:8]}, []string{afi.ID}},
		{"by status", Filter{Status: models.StatusShipped}, []string{kofi.ID}},
		{"status and search", Filter{Status: models.StatusPending, Search: "kofi"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ledger.Filter(ctx, tt.filter)
			require.NoError(t, err)
			ids := make([]string, len(got))
			for i, o := range got {
				ids[i] = o.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: "old", Date: base},
		{ID: "new", Date: base.Add(2 * time.Hour)},
		{ID: "mid", Date: base.Add(time.Hour)},
	}

	SortNewestFirst(orders)

	assert.Equal(t, "new", orders[0].ID)
	assert.Equal(t, "mid", orders[1].ID)
	assert.Equal(t, "old", orders[2].ID)
}
