package cart

import (
	"context"
	"testing"

	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Produit " + id,
		Price:    price,
		Images:   []string{"https://example.com/" + id + ".jpg"},
		Category: "Accessoires",
		Stock:    3,
	}
}

func newTestCart() *Cart {
	return New(store.New(store.NewMemoryBackend()))
}

func TestGetEmptyCart(t *testing.T) {
	items, err := newTestCart().Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAddMergesSameProduct(t *testing.T) {
	ctx := context.Background()
	c := newTestCart()
	p := product("a", 1000)

	require.NoError(t, c.Add(ctx, p, 2))
	require.NoError(t, c.Add(ctx, p, 3))

	items, err := c.Get(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, p, items[0].Product)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	c := newTestCart()

	require.NoError(t, c.Add(ctx, product("a", 100), 1))
	require.NoError(t, c.Add(ctx, product("b", 200), 0))
	require.NoError(t, c.Add(ctx, product("a", 100), 1))

	items, err := c.Get(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "b", items[1].Product.ID)
	assert.Equal(t, 1, items[1].Quantity, "quantity defaults to 1")
}

func TestAddIgnoresStock(t *testing.T) {
	ctx := context.Background()
	c := newTestCart()

	require.NoError(t, c.Add(ctx, product("a", 100), 50))

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	c := newTestCart()
	require.NoError(t, c.Add(ctx, product("a", 100), 1))

	require.NoError(t, c.SetQuantity(ctx, "a", 7))
	require.NoError(t, c.SetQuantity(ctx, "missing", 9))

	items, err := c.Get(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	c := newTestCart()
	require.NoError(t, c.Add(ctx, product("a", 100), 1))
	require.NoError(t, c.Add(ctx, product("b", 100), 1))

	require.NoError(t, c.Remove(ctx, "a"))

	items, err := c.Get(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Product.ID)
}

func TestCountAndClear(t *testing.T) {
	ctx := context.Background()
	c := newTestCart()
	require.NoError(t, c.Add(ctx, product("a", 100), 2))
	require.NoError(t, c.Add(ctx, product("b", 100), 4))

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	require.NoError(t, c.Clear(ctx))

	count, err = c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		name  string
		items []models.CartItem
		want  int
	}{
		{name: "empty", items: nil, want: 0},
		{name: "single line", items: []models.CartItem{{Product: product("a", 10), Quantity: 3}}, want: 3},
		{name: "several lines", items: []models.CartItem{
			{Product: product("a", 10), Quantity: 2},
			{Product: product("b", 10), Quantity: 5},
		}, want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quantity(tt.items))
		})
	}
}

func TestSubtotal(t *testing.T) {
	ctx := context.Background()
	c := newTestCart()
	require.NoError(t, c.Add(ctx, product("a", 1000), 2))
	require.NoError(t, c.Add(ctx, product("b", 500), 1))

	subtotal, err := c.Subtotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), subtotal)
}

func TestUnavailableStorageIsSilent(t *testing.T) {
	ctx := context.Background()
	c := New(store.New(nil))

	assert.NoError(t, c.Add(ctx, product("a", 100), 1))
	assert.NoError(t, c.SetQuantity(ctx, "a", 3))
	assert.NoError(t, c.Remove(ctx, "a"))
	assert.NoError(t, c.Clear(ctx))

	items, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
