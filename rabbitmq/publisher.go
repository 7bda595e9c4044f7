package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/babagsm1/etsdiabalystore/models"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Publisher sends order events to the order queue. It satisfies orders.Notifier.
type Publisher struct {
	pool      *ChannelPool
	queueName string
}

func NewPublisher(pool *ChannelPool, queueName string) *Publisher {
	return &Publisher{
		pool:      pool,
		queueName: queueName,
	}
}

// EncodeOrder builds the persistent JSON message for order.
func EncodeOrder(order models.Order) (amqp.Publishing, error) {
	body, err := json.Marshal(models.NewOrderEvent(order))
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal order: %w", err)
	}
	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    order.ID,
		Timestamp:    order.Date,
		Body:         body,
	}, nil
}

func (p *Publisher) PublishOrder(ctx context.Context, order models.Order) error {
	msg, err := EncodeOrder(order)
	if err != nil {
		return err
	}

	ch, err := p.pool.GetChannel()
	if err != nil {
		return fmt.Errorf("failed to get channel from pool: %w", err)
	}
	defer p.pool.ReturnChannel(ch)

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("failed to publish order: %w", err)
	}

	log.Printf("Published order %s to %s", order.ID, p.queueName)
	return nil
}
