// Package catalog is the product repository of the shop.
package catalog

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/store"

	"github.com/google/uuid"
)

// Repository serves the product collection. Every call first waits latency,
// mimicking a network round-trip.
type Repository struct {
	store   *store.Store
	latency time.Duration
}

func NewRepository(s *store.Store, latency time.Duration) *Repository {
	return &Repository{
		store:   s,
		latency: latency,
	}
}

// wait blocks for the simulated latency or until ctx is done.
func (r *Repository) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ListAll returns every product, or the default catalog if none was ever stored.
func (r *Repository) ListAll(ctx context.Context) ([]models.Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return store.Load(ctx, r.store, store.ProductsKey, store.DefaultProducts)
}

func (r *Repository) ListFeatured(ctx context.Context) ([]models.Product, error) {
	products, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (models.Product, bool, error) {
	products, err := r.ListAll(ctx)
	if err != nil {
		return models.Product{}, false, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return models.Product{}, false, nil
}

// Create stores a new product under a fresh id.
func (r *Repository) Create(ctx context.Context, in models.ProductInput) (models.Product, error) {
	if err := r.wait(ctx); err != nil {
		return models.Product{}, err
	}
	product := in.WithID(uuid.NewString())

	err := store.Mutate(ctx, r.store, store.ProductsKey, store.DefaultProducts, func(products *[]models.Product) error {
		*products = append(*products, product)
		return nil
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("Created product with ID: %s", product.ID)
	return product, nil
}

// Update replaces the product with the same id.
func (r *Repository) Update(ctx context.Context, product models.Product) (models.Product, error) {
	if err := r.wait(ctx); err != nil {
		return models.Product{}, err
	}

	err := store.Mutate(ctx, r.store, store.ProductsKey, store.DefaultProducts, func(products *[]models.Product) error {
		for i := range *products {
			if (*products)[i].ID == product.ID {
				(*products)[i] = product.Clone()
				return nil
			}
		}
		return fmt.Errorf("product %s: %w", product.ID, models.ErrNotFound)
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	log.Printf("Updated product ID: %s", product.ID)
	return product, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.wait(ctx); err != nil {
		return err
	}

	err := store.Mutate(ctx, r.store, store.ProductsKey, store.DefaultProducts, func(products *[]models.Product) error {
		kept := (*products)[:0]
		for _, p := range *products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(*products) {
			return fmt.Errorf("product %s: %w", id, models.ErrNotFound)
		}
		*products = kept
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	log.Printf("Deleted product ID: %s", id)
	return nil
}
