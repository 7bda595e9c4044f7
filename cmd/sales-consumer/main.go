package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/babagsm1/etsdiabalystore/config"
	"github.com/babagsm1/etsdiabalystore/consumer"
	"github.com/babagsm1/etsdiabalystore/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	cfg := config.LoadConfig()

	log.Printf("Starting sales consumer with %d workers", cfg.NumWorkers)
	log.Printf("Connecting to RabbitMQ at %s", cfg.RabbitMQURL)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := run(cfg, sigChan); err != nil {
		log.Fatal(err)
	}
	log.Println("Sales consumer shut down gracefully")
}

// run consumes orders until stop fires, then prints the sales summary. The
// connection is closed exactly once on every path.
func run(cfg *config.Config, stop <-chan os.Signal) error {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open a channel: %w", err)
	}
	if err := rabbitmq.DeclareQueue(ch, cfg.RabbitMQQueue); err != nil {
		conn.Close()
		return err
	}
	ch.Close()

	log.Printf("Connected to queue: %s", cfg.RabbitMQQueue)

	tracker := consumer.NewSalesTracker()

	var wg sync.WaitGroup
	for i := 0; i < cfg.NumWorkers; i++ {
		worker, err := consumer.NewWorker(i+1, conn, cfg.RabbitMQQueue, tracker)
		if err != nil {
			conn.Close()
			wg.Wait()
			return fmt.Errorf("failed to create worker %d: %w", i+1, err)
		}
		wg.Add(1)
		go worker.Start(&wg)
	}

	log.Printf("All %d workers started", cfg.NumWorkers)

	<-stop
	log.Println("Received shutdown signal, stopping workers...")

	// closing the connection closes every worker channel
	if err := conn.Close(); err != nil {
		log.Printf("Failed to close RabbitMQ connection: %v", err)
	}
	wg.Wait()

	tracker.WriteSummary(os.Stdout)
	return nil
}
