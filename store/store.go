// Package store keeps the shop collections in named slots. Every slot holds one
// JSON document (a list, or the settings object) and is always replaced wholesale.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/babagsm1/etsdiabalystore/models"
)

const (
	ProductsKey     = "products"
	CartKey         = "cart"
	OrdersKey       = "orders"
	TestimonialsKey = "testimonials"
	SettingsKey     = "settings"
)

// Backend is the medium a Store persists to.
type Backend interface {
	// Get returns the slot payload, or found=false if the slot was never written.
	Get(ctx context.Context, key string) (payload []byte, found bool, err error)
	// Put replaces the slot payload.
	Put(ctx context.Context, key string, payload []byte) error
	Close(ctx context.Context) error
}

type Store struct {
	backend Backend

	mu    sync.Mutex
	slots map[string]*sync.RWMutex
}

// New returns a Store over backend. A nil backend gives an unavailable store: reads
// find nothing and writes fail with models.ErrStorageUnavailable.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		slots:   make(map[string]*sync.RWMutex),
	}
}

func (s *Store) Available() bool {
	return s.backend != nil
}

func (s *Store) slot(key string) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.slots[key]
	if !ok {
		l = &sync.RWMutex{}
		s.slots[key] = l
	}
	return l
}

// Read returns the raw payload stored under key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, bool, error) {
	l := s.slot(key)
	l.RLock()
	defer l.RUnlock()
	return s.read(ctx, key)
}

// Write replaces the payload stored under key.
func (s *Store) Write(ctx context.Context, key string, payload []byte) error {
	l := s.slot(key)
	l.Lock()
	defer l.Unlock()
	return s.write(ctx, key, payload)
}

func (s *Store) read(ctx context.Context, key string) ([]byte, bool, error) {
	if s.backend == nil {
		return nil, false, nil
	}
	payload, found, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return payload, found, nil
}

func (s *Store) write(ctx context.Context, key string, payload []byte) error {
	if s.backend == nil {
		return models.ErrStorageUnavailable
	}
	if err := s.backend.Put(ctx, key, payload); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

// Init seeds the slots that have never been written: products and testimonials
// get the default dataset, orders an empty list. The cart is left absent.
func (s *Store) Init(ctx context.Context) error {
	if !s.Available() {
		log.Printf("Storage unavailable, serving default data")
		return nil
	}
	seeds := []struct {
		key   string
		value any
	}{
		{ProductsKey, DefaultProducts()},
		{TestimonialsKey, DefaultTestimonials()},
		{OrdersKey, []models.Order{}},
	}
	for _, seed := range seeds {
		if err := s.seed(ctx, seed.key, seed.value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) seed(ctx context.Context, key string, value any) error {
	l := s.slot(key)
	l.Lock()
	defer l.Unlock()

	_, found, err := s.read(ctx, key)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode seed for %s: %w", key, err)
	}
	if err := s.write(ctx, key, payload); err != nil {
		return err
	}
	log.Printf("Seeded slot %s", key)
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Close(ctx)
}

// Load decodes the slot into a T, or returns fallback() when the slot is absent.
func Load[T any](ctx context.Context, s *Store, key string, fallback func() T) (T, error) {
	l := s.slot(key)
	l.RLock()
	defer l.RUnlock()
	return load(ctx, s, key, fallback)
}

func load[T any](ctx context.Context, s *Store, key string, fallback func() T) (T, error) {
	payload, found, err := s.read(ctx, key)
	if err != nil {
		var zero T
		return zero, err
	}
	if !found {
		return fallback(), nil
	}
	var value T
	if err := json.Unmarshal(payload, &value); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: slot %s: %v", models.ErrSerialization, key, err)
	}
	return value, nil
}

// Save encodes value and replaces the slot.
func Save[T any](ctx context.Context, s *Store, key string, value T) error {
	l := s.slot(key)
	l.Lock()
	defer l.Unlock()
	return save(ctx, s, key, value)
}

func save[T any](ctx context.Context, s *Store, key string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: slot %s: %v", models.ErrSerialization, key, err)
	}
	return s.write(ctx, key, payload)
}

// Mutate runs a read-modify-write cycle on the slot while holding its lock. If fn
// returns an error nothing is written and the error is returned as is.
func Mutate[T any](ctx context.Context, s *Store, key string, fallback func() T, fn func(*T) error) error {
	if !s.Available() {
		return models.ErrStorageUnavailable
	}
	l := s.slot(key)
	l.Lock()
	defer l.Unlock()

	value, err := load(ctx, s, key, fallback)
	if err != nil {
		return err
	}
	if err := fn(&value); err != nil {
		return err
	}
	return save(ctx, s, key, value)
}
