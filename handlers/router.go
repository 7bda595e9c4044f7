package handlers

import (
	"net/http"
	"time"

	"github.com/babagsm1/etsdiabalystore/cart"
	"github.com/babagsm1/etsdiabalystore/catalog"
	"github.com/babagsm1/etsdiabalystore/orders"
	"github.com/babagsm1/etsdiabalystore/settings"
	"github.com/babagsm1/etsdiabalystore/stats"
	"github.com/babagsm1/etsdiabalystore/store"
	"github.com/babagsm1/etsdiabalystore/testimonials"

	"github.com/gin-gonic/gin"
)

// Options tunes the services behind the router.
type Options struct {
	CatalogLatency time.Duration
	Notifier       orders.Notifier
}

// NewRouter builds every service over s and registers the storefront and admin
// routes on a fresh engine.
func NewRouter(s *store.Store, opts Options) *gin.Engine {
	repo := catalog.NewRepository(s, opts.CatalogLatency)
	shopCart := cart.New(s)
	ledger := orders.NewLedger(s, opts.Notifier)
	queue := testimonials.NewQueue(s)
	shop := settings.NewService(s)

	products := NewProductHandler(repo)
	cartHandler := NewCartHandler(shopCart, repo, shop)
	checkout := NewCheckoutHandler(shopCart, ledger)
	orderHandler := NewOrderHandler(ledger)
	testimonialHandler := NewTestimonialHandler(queue)
	admin := NewAdminHandler(stats.NewAggregator(repo, ledger, queue), shop)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/products", products.ListProducts)
	router.GET("/products/featured", products.ListFeatured)
	router.GET("/products/:productId", products.GetProduct)
	router.GET("/categories", products.ListCategories)

	router.GET("/testimonials", testimonialHandler.ListApproved)
	router.POST("/testimonials", testimonialHandler.Submit)

	router.GET("/cart", cartHandler.GetCart)
	router.GET("/cart/count", cartHandler.CountItems)
	router.POST("/cart/items", cartHandler.AddItem)
	router.PUT("/cart/items/:productId", cartHandler.UpdateQuantity)
	router.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
	router.DELETE("/cart", cartHandler.ClearCart)
	router.POST("/checkout", checkout.Checkout)

	adminGroup := router.Group("/admin")
	{
		adminGroup.GET("/stats", admin.GetStats)
		adminGroup.GET("/settings", admin.GetSettings)
		adminGroup.PUT("/settings", admin.SaveSettings)

		adminGroup.GET("/products", products.AdminListProducts)
		adminGroup.POST("/products", products.CreateProduct)
		adminGroup.PUT("/products/:productId", products.UpdateProduct)
		adminGroup.DELETE("/products/:productId", products.DeleteProduct)

		adminGroup.GET("/orders", orderHandler.ListOrders)
		adminGroup.GET("/orders/pending", orderHandler.ListPending)
		adminGroup.PUT("/orders/:orderId/status", orderHandler.UpdateStatus)

		adminGroup.GET("/testimonials", testimonialHandler.ListAll)
		adminGroup.PUT("/testimonials/:testimonialId/status", testimonialHandler.UpdateStatus)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	return router
}
