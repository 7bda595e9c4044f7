package handlers

import (
	"log"
	"net/http"

	"github.com/babagsm1/etsdiabalystore/cart"
	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/orders"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cart   *cart.Cart
	ledger *orders.Ledger
}

func NewCheckoutHandler(c *cart.Cart, ledger *orders.Ledger) *CheckoutHandler {
	return &CheckoutHandler{
		cart:   c,
		ledger: ledger,
	}
}

// Checkout handles POST /checkout. The cart is cleared only once the order is stored.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	items, err := h.cart.Get(ctx)
	if err != nil {
		respondError(c, "Failed to load cart", err)
		return
	}
	if len(items) == 0 {
		respondError(c, "Cannot checkout an empty cart", models.ErrEmptyCart)
		return
	}

	order, err := h.ledger.Create(ctx, items, req.CustomerInfo)
	if err != nil {
		respondError(c, "Failed to create order", err)
		return
	}

	if err := h.cart.Clear(ctx); err != nil {
		// the order exists; a stale cart is not worth failing the request for
		log.Printf("Failed to clear cart after order %s: %v", order.ID, err)
	}

	c.JSON(http.StatusCreated, order)
}
