// Package orders is the order ledger: orders are appended from a cart snapshot and
// only their status changes afterwards.
package orders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/babagsm1/etsdiabalystore/cart"
	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/store"

	"github.com/google/uuid"
)

// Notifier is told about every order once it has been stored.
type Notifier interface {
	PublishOrder(ctx context.Context, order models.Order) error
}

type Ledger struct {
	store    *store.Store
	notifier Notifier
	now      func() time.Time
}

// NewLedger returns a ledger over s. notifier may be nil.
func NewLedger(s *store.Store, notifier Notifier) *Ledger {
	return &Ledger{
		store:    s,
		notifier: notifier,
		now:      time.Now,
	}
}

func noOrders() []models.Order {
	return []models.Order{}
}

// Create records a pending order for items. The items are deep-copied so later cart
// edits do not reach the order, and the total is fixed here.
func (l *Ledger) Create(ctx context.Context, items []models.CartItem, customer models.CustomerInfo) (models.Order, error) {
	snapshot := make([]models.CartItem, len(items))
	for i, item := range items {
		snapshot[i] = item.Clone()
	}

	order := models.Order{
		ID:           uuid.NewString(),
		Items:        snapshot,
		CustomerInfo: customer,
		Date:         l.now().UTC(),
		Status:       models.StatusPending,
		Total:        cart.Total(items),
	}

	err := store.Mutate(ctx, l.store, store.OrdersKey, noOrders, func(orders *[]models.Order) error {
		*orders = append(*orders, order)
		return nil
	})
	if err != nil {
		log.Printf("Failed to create order: %v", err)
		return models.Order{}, fmt.Errorf("%w: %w", models.ErrOrderCreate, err)
	}

	log.Printf("Created order %s for %s (total %d)", order.ID, customer.Email, order.Total)

	if l.notifier != nil {
		if err := l.notifier.PublishOrder(ctx, order); err != nil {
			log.Printf("Failed to publish order %s: %v", order.ID, err)
		}
	}
	return order, nil
}

// ListAll returns orders in the order they were created.
func (l *Ledger) ListAll(ctx context.Context) ([]models.Order, error) {
	return store.Load(ctx, l.store, store.OrdersKey, noOrders)
}

func (l *Ledger) ListPending(ctx context.Context) ([]models.Order, error) {
	return l.Filter(ctx, Filter{Status: models.StatusPending})
}

// SetStatus overwrites the status of orderID. Any status may follow any other.
func (l *Ledger) SetStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	if !l.store.Available() {
		return nil
	}

	err := store.Mutate(ctx, l.store, store.OrdersKey, noOrders, func(orders *[]models.Order) error {
		for i := range *orders {
			if (*orders)[i].ID == orderID {
				(*orders)[i].Status = status
				return nil
			}
		}
		return fmt.Errorf("order %s: %w", orderID, models.ErrNotFound)
	})
	if err != nil {
		log.Printf("Failed to update order status: %v", err)
		return err
	}

	log.Printf("Updated order %s status to %s", orderID, status)
	return nil
}
