package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps slots in a map. It is the default backend and the one tests use.
type MemoryBackend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		slots: make(map[string][]byte),
	}
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	payload, ok := b.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), payload...), true, nil
}

func (b *MemoryBackend) Put(_ context.Context, key string, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slots[key] = append([]byte(nil), payload...)
	return nil
}

func (b *MemoryBackend) Close(context.Context) error {
	return nil
}
