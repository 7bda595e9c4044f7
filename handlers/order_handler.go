package handlers

import (
	"net/http"

	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/orders"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	ledger *orders.Ledger
}

func NewOrderHandler(ledger *orders.Ledger) *OrderHandler {
	return &OrderHandler{ledger: ledger}
}

// ListOrders handles GET /admin/orders?q=&status=, newest first.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	if status == "all" {
		status = ""
	}
	if status != "" && !status.Valid() {
		badRequest(c, "Invalid order status", nil)
		return
	}

	list, err := h.ledger.Filter(c.Request.Context(), orders.Filter{
		Search: c.Query("q"),
		Status: status,
	})
	if err != nil {
		respondError(c, "Failed to load orders", err)
		return
	}
	orders.SortNewestFirst(list)
	c.JSON(http.StatusOK, list)
}

// ListPending handles GET /admin/orders/pending
func (h *OrderHandler) ListPending(c *gin.Context) {
	list, err := h.ledger.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load orders", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateStatus handles PUT /admin/orders/:orderId/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	if err := h.ledger.SetStatus(c.Request.Context(), c.Param("orderId"), req.Status); err != nil {
		respondError(c, "Failed to update order", err)
		return
	}
	c.Status(http.StatusNoContent)
}
