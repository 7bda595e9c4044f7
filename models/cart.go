package models

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Clone deep-copies the embedded product snapshot.
func (i CartItem) Clone() CartItem {
	return CartItem{Product: i.Product.Clone(), Quantity: i.Quantity}
}

// LineTotal is price times quantity.
func (i CartItem) LineTotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type CartResponse struct {
	Items       []CartItem `json:"items"`
	Count       int        `json:"count"`
	Subtotal    int64      `json:"subtotal"`
	DeliveryFee int64      `json:"deliveryFee"`
}

type CountResponse struct {
	Count int `json:"count"`
}
