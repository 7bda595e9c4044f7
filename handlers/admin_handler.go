package handlers

import (
	"net/http"

	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/settings"
	"github.com/babagsm1/etsdiabalystore/stats"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	stats    *stats.Aggregator
	settings *settings.Service
}

func NewAdminHandler(agg *stats.Aggregator, svc *settings.Service) *AdminHandler {
	return &AdminHandler{
		stats:    agg,
		settings: svc,
	}
}

// GetStats handles GET /admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	s, err := h.stats.Compute(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to compute stats", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// GetSettings handles GET /admin/settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	s, err := h.settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load settings", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// SaveSettings handles PUT /admin/settings
func (h *AdminHandler) SaveSettings(c *gin.Context) {
	var req models.ShopSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	if err := h.settings.Save(c.Request.Context(), req); err != nil {
		respondError(c, "Failed to save settings", err)
		return
	}
	c.JSON(http.StatusOK, req)
}
