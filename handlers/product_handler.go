package handlers

import (
	"net/http"

	"github.com/babagsm1/etsdiabalystore/catalog"
	"github.com/babagsm1/etsdiabalystore/models"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	catalog *catalog.Repository
}

func NewProductHandler(repo *catalog.Repository) *ProductHandler {
	return &ProductHandler{catalog: repo}
}

// ListProducts handles GET /products?category=&q=&sort=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.Query(c.Request.Context(), catalog.Query{
		Category: c.Query("category"),
		Search:   c.Query("q"),
		Sort:     catalog.SortOrder(c.DefaultQuery("sort", string(catalog.SortFeatured))),
	})
	if err != nil {
		respondError(c, "Failed to load products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListFeatured handles GET /products/featured
func (h *ProductHandler) ListFeatured(c *gin.Context) {
	products, err := h.catalog.ListFeatured(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load featured products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:productId
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, found, err := h.catalog.GetByID(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, "Failed to load product", err)
		return
	}
	if !found {
		notFound(c, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListCategories handles GET /categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// AdminListProducts handles GET /admin/products?q=
func (h *ProductHandler) AdminListProducts(c *gin.Context) {
	products, err := h.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, "Failed to load products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /admin/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	product, err := h.catalog.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to create product", err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /admin/products/:productId
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req models.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	product, err := h.catalog.Update(c.Request.Context(), req.WithID(c.Param("productId")))
	if err != nil {
		respondError(c, "Failed to update product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/:productId
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), c.Param("productId")); err != nil {
		respondError(c, "Failed to delete product", err)
		return
	}
	c.Status(http.StatusNoContent)
}
