package handlers

import (
	"net/http"

	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/testimonials"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	queue *testimonials.Queue
}

func NewTestimonialHandler(queue *testimonials.Queue) *TestimonialHandler {
	return &TestimonialHandler{queue: queue}
}

// ListApproved handles GET /testimonials
func (h *TestimonialHandler) ListApproved(c *gin.Context) {
	list, err := h.queue.ListApproved(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load testimonials", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Submit handles POST /testimonials
func (h *TestimonialHandler) Submit(c *gin.Context) {
	var req models.TestimonialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	testimonial, err := h.queue.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to submit testimonial", err)
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

// ListAll handles GET /admin/testimonials
func (h *TestimonialHandler) ListAll(c *gin.Context) {
	list, err := h.queue.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load testimonials", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateStatus handles PUT /admin/testimonials/:testimonialId/status
func (h *TestimonialHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateTestimonialStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	updated, found, err := h.queue.SetStatus(c.Request.Context(), c.Param("testimonialId"), req.Status)
	if err != nil {
		respondError(c, "Failed to update testimonial", err)
		return
	}
	if !found {
		notFound(c, "Testimonial not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}
