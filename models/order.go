package models

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type CustomerInfo struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type Order struct {
	ID           string       `json:"id"`
	Items        []CartItem   `json:"items"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Date         time.Time    `json:"date"`
	Status       OrderStatus  `json:"status"`
	Total        int64        `json:"total"`
}

type CheckoutRequest struct {
	CustomerInfo CustomerInfo `json:"customerInfo"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

// OrderEvent is the message published for every created order.
type OrderEvent struct {
	OrderID string           `json:"order_id"`
	Status  OrderStatus      `json:"status"`
	Total   int64            `json:"total"`
	Items   []OrderEventItem `json:"items"`
}

type OrderEventItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// NewOrderEvent flattens an order into its event form.
func NewOrderEvent(o Order) OrderEvent {
	items := make([]OrderEventItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderEventItem{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		}
	}
	return OrderEvent{
		OrderID: o.ID,
		Status:  o.Status,
		Total:   o.Total,
		Items:   items,
	}
}
