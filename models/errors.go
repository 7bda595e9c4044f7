package models

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrSerialization      = errors.New("malformed stored payload")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrOrderCreate        = errors.New("unable to create order")
	ErrEmptyCart          = errors.New("cart is empty")
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
