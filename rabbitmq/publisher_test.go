package rabbitmq

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/babagsm1/etsdiabalystore/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOrder(t *testing.T) {
	date := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	order := models.Order{
		ID:     "order-1",
		Status: models.StatusPending,
		Total:  2500,
		Date:   date,
		Items: []models.CartItem{
			{Product: models.Product{ID: "a", Price: 1000}, Quantity: 2},
			{Product: models.Product{ID: "b", Price: 500}, Quantity: 1},
		},
	}

	msg, err := EncodeOrder(order)
	require.NoError(t, err)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, "order-1", msg.MessageId)
	assert.Equal(t, date, msg.Timestamp)

	var event models.OrderEvent
	require.NoError(t, json.Unmarshal(msg.Body, &event))
	assert.Equal(t, models.OrderEvent{
		OrderID: "order-1",
		Status:  models.StatusPending,
		Total:   2500,
		Items: []models.OrderEventItem{
			{ProductID: "a", Quantity: 2, Price: 1000},
			{ProductID: "b", Quantity: 1, Price: 500},
		},
	}, event)
}
