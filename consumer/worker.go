package consumer

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/babagsm1/etsdiabalystore/models"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Worker struct {
	workerID  int
	channel   *amqp.Channel
	queueName string
	tracker   *SalesTracker
}

func NewWorker(workerID int, conn *amqp.Connection, queueName string, tracker *SalesTracker) (*Worker, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel for worker %d: %w", workerID, err)
	}

	// one unacked order per worker
	err = ch.Qos(
		1,     // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to set QoS for worker %d: %w", workerID, err)
	}

	return &Worker{
		workerID:  workerID,
		channel:   ch,
		queueName: queueName,
		tracker:   tracker,
	}, nil
}

// Start consumes until the channel closes.
func (w *Worker) Start(wg *sync.WaitGroup) {
	defer wg.Done()
	defer w.channel.Close()

	msgs, err := w.channel.Consume(
		w.queueName,                          // queue
		fmt.Sprintf("worker-%d", w.workerID), // consumer tag
		false,                                // auto-ack
		false,                                // exclusive
		false,                                // no-local
		false,                                // no-wait
		nil,                                  // args
	)
	if err != nil {
		log.Printf("Worker %d failed to register consumer: %v", w.workerID, err)
		return
	}

	log.Printf("Worker %d started and waiting for orders", w.workerID)

	for msg := range msgs {
		w.processMessage(msg)
	}

	log.Printf("Worker %d stopped", w.workerID)
}

func (w *Worker) processMessage(msg amqp.Delivery) {
	var event models.OrderEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil || event.OrderID == "" {
		log.Printf("Worker %d: dropping malformed order event: %v", w.workerID, err)
		// malformed messages are never requeued
		msg.Nack(false, false)
		return
	}

	w.tracker.Record(event)

	if err := msg.Ack(false); err != nil {
		log.Printf("Worker %d: Failed to acknowledge message: %v", w.workerID, err)
	} else {
		log.Printf("Worker %d: Processed and acknowledged order %s", w.workerID, event.OrderID)
	}
}
