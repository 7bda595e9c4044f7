package handlers

import (
	"log"
	"net/http"

	"github.com/babagsm1/etsdiabalystore/cart"
	"github.com/babagsm1/etsdiabalystore/catalog"
	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/settings"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cart     *cart.Cart
	catalog  *catalog.Repository
	settings *settings.Service
}

func NewCartHandler(c *cart.Cart, repo *catalog.Repository, svc *settings.Service) *CartHandler {
	return &CartHandler{
		cart:     c,
		catalog:  repo,
		settings: svc,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := h.cart.Get(ctx)
	if err != nil {
		respondError(c, "Failed to load cart", err)
		return
	}
	shop, err := h.settings.Get(ctx)
	if err != nil {
		respondError(c, "Failed to load settings", err)
		return
	}

	subtotal := cart.Total(items)

	c.JSON(http.StatusOK, models.CartResponse{
		Items:       items,
		Count:       cart.Quantity(items),
		Subtotal:    subtotal,
		DeliveryFee: settings.DeliveryFee(shop.Shipping, subtotal),
	})
}

// CountItems handles GET /cart/count
func (h *CartHandler) CountItems(c *gin.Context) {
	count, err := h.cart.Count(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load cart", err)
		return
	}
	c.JSON(http.StatusOK, models.CountResponse{Count: count})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	product, found, err := h.catalog.GetByID(ctx, req.ProductID)
	if err != nil {
		respondError(c, "Failed to load product", err)
		return
	}
	if !found {
		notFound(c, "Product not found")
		return
	}

	if err := h.cart.Add(ctx, product, req.Quantity); err != nil {
		respondError(c, "Failed to update cart", err)
		return
	}

	log.Printf("Added %d of product %s to cart", max(req.Quantity, 1), product.ID)
	c.Status(http.StatusNoContent)
}

// UpdateQuantity handles PUT /cart/items/:productId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	if err := h.cart.SetQuantity(c.Request.Context(), c.Param("productId"), req.Quantity); err != nil {
		respondError(c, "Failed to update cart", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveItem handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.cart.Remove(c.Request.Context(), c.Param("productId")); err != nil {
		respondError(c, "Failed to update cart", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context()); err != nil {
		respondError(c, "Failed to clear cart", err)
		return
	}
	c.Status(http.StatusNoContent)
}
