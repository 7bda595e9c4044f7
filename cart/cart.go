// Package cart keeps the single active shopping cart. The cart is a soft
// collection: when storage is unavailable it reads as empty and edits are dropped.
package cart

import (
	"context"
	"errors"
	"log"

	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/store"
)

type Cart struct {
	store *store.Store
}

func New(s *store.Store) *Cart {
	return &Cart{store: s}
}

func emptyCart() []models.CartItem {
	return []models.CartItem{}
}

// Get returns the cart items in insertion order.
func (c *Cart) Get(ctx context.Context) ([]models.CartItem, error) {
	return store.Load(ctx, c.store, store.CartKey, emptyCart)
}

// Add merges quantity into the entry for product, appending a new entry if the
// product is not in the cart yet. A quantity below 1 counts as 1. Stock is not
// checked here.
func (c *Cart) Add(ctx context.Context, product models.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	return c.mutate(ctx, func(items *[]models.CartItem) {
		for i := range *items {
			if (*items)[i].Product.ID == product.ID {
				(*items)[i].Quantity += quantity
				return
			}
		}
		*items = append(*items, models.CartItem{Product: product.Clone(), Quantity: quantity})
	})
}

// SetQuantity overwrites the quantity of productID. Unknown products are ignored.
func (c *Cart) SetQuantity(ctx context.Context, productID string, quantity int) error {
	return c.mutate(ctx, func(items *[]models.CartItem) {
		for i := range *items {
			if (*items)[i].Product.ID == productID {
				(*items)[i].Quantity = quantity
				return
			}
		}
	})
}

func (c *Cart) Remove(ctx context.Context, productID string) error {
	return c.mutate(ctx, func(items *[]models.CartItem) {
		kept := (*items)[:0]
		for _, item := range *items {
			if item.Product.ID != productID {
				kept = append(kept, item)
			}
		}
		*items = kept
	})
}

func (c *Cart) Clear(ctx context.Context) error {
	err := store.Save(ctx, c.store, store.CartKey, emptyCart())
	if errors.Is(err, models.ErrStorageUnavailable) {
		return nil
	}
	return err
}

// Count is the sum of quantities, used for the cart badge.
func (c *Cart) Count(ctx context.Context) (int, error) {
	items, err := c.Get(ctx)
	if err != nil {
		return 0, err
	}
	return Quantity(items), nil
}

// Quantity sums the quantities of items.
func Quantity(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of price times quantity over the cart.
func (c *Cart) Subtotal(ctx context.Context) (int64, error) {
	items, err := c.Get(ctx)
	if err != nil {
		return 0, err
	}
	return Total(items), nil
}

// Total sums price times quantity over items.
func Total(items []models.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

func (c *Cart) mutate(ctx context.Context, fn func(*[]models.CartItem)) error {
	err := store.Mutate(ctx, c.store, store.CartKey, emptyCart, func(items *[]models.CartItem) error {
		fn(items)
		return nil
	})
	if errors.Is(err, models.ErrStorageUnavailable) {
		log.Printf("Cart storage unavailable, change dropped")
		return nil
	}
	return err
}
