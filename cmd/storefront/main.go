package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/babagsm1/etsdiabalystore/config"
	"github.com/babagsm1/etsdiabalystore/handlers"
	"github.com/babagsm1/etsdiabalystore/rabbitmq"
	"github.com/babagsm1/etsdiabalystore/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	log.Printf("Starting storefront on port %s with %s storage", cfg.Port, cfg.StoreBackend)

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

// run serves until the listener fails. Deferred cleanup runs before it returns.
func run(cfg *config.Config) error {
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	backend, err := store.OpenBackend(ctx, cfg)
	if err != nil {
		// keep serving the default catalog rather than refusing to start
		log.Printf("Storage backend unavailable, continuing without persistence: %v", err)
	}
	s := store.New(backend)
	if err := s.Init(ctx); err != nil {
		log.Printf("Failed to seed storage: %v", err)
	}
	cancel()
	defer func() {
		if err := s.Close(context.Background()); err != nil {
			log.Printf("Failed to close storage: %v", err)
		}
	}()

	opts := handlers.Options{CatalogLatency: cfg.CatalogLatency}

	if cfg.OrderEvents {
		channelPool, err := rabbitmq.NewChannelPool(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize)
		if err != nil {
			return fmt.Errorf("failed to create RabbitMQ channel pool: %w", err)
		}
		defer channelPool.Close()

		opts.Notifier = rabbitmq.NewPublisher(channelPool, cfg.RabbitMQQueue)
		log.Printf("Publishing order events to %s", cfg.RabbitMQQueue)
	}

	router := handlers.NewRouter(s, opts)

	return router.Run(":" + cfg.Port)
}
