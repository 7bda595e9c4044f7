package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_BACKEND", "CATALOG_LATENCY", "ORDER_EVENTS", "CHANNEL_POOL_SIZE"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, 300*time.Millisecond, cfg.CatalogLatency)
	assert.False(t, cfg.OrderEvents)
	assert.Equal(t, 10, cfg.ChannelPoolSize)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "file")
	t.Setenv("CATALOG_LATENCY", "0s")
	t.Setenv("ORDER_EVENTS", "true")
	t.Setenv("NUM_WORKERS", "3")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "file", cfg.StoreBackend)
	assert.Equal(t, time.Duration(0), cfg.CatalogLatency)
	assert.True(t, cfg.OrderEvents)
	assert.Equal(t, 3, cfg.NumWorkers)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CHANNEL_POOL_SIZE", "lots")
	t.Setenv("CATALOG_LATENCY", "soon")
	t.Setenv("ORDER_EVENTS", "maybe")

	cfg := LoadConfig()

	assert.Equal(t, 10, cfg.ChannelPoolSize)
	assert.Equal(t, 300*time.Millisecond, cfg.CatalogLatency)
	assert.False(t, cfg.OrderEvents)
}
