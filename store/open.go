package store

import (
	"context"
	"fmt"
	"time"

	"github.com/babagsm1/etsdiabalystore/config"
)

// OpenBackend builds the backend named by cfg.StoreBackend. "none" yields a nil
// backend, i.e. an unavailable store.
func OpenBackend(ctx context.Context, cfg *config.Config) (Backend, error) {
	var (
		backend Backend
		err     error
	)
	switch cfg.StoreBackend {
	case "", "memory":
		backend = NewMemoryBackend()
	case "file":
		var b *FileBackend
		if b, err = NewFileBackend(cfg.StoreDir); err == nil {
			backend = b
		}
	case "mongo":
		var b *MongoBackend
		b, err = NewMongoBackend(MongoConfig{
			URI:     cfg.MongoURI,
			DBName:  cfg.MongoDBName,
			Timeout: 15 * time.Second,
		})
		if err == nil {
			backend = b
		}
	case "mysql":
		var b *MySQLBackend
		if b, err = NewMySQLBackend(cfg.MySQLDSN); err == nil {
			backend = b
		}
	case "dynamodb":
		var b *DynamoBackend
		if b, err = NewDynamoBackend(ctx, cfg.AWSRegion, cfg.DynamoDBTableName); err == nil {
			backend = b
		}
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s backend: %w", cfg.StoreBackend, err)
	}
	return backend, nil
}
