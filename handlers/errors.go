package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/babagsm1/etsdiabalystore/models"

	"github.com/gin-gonic/gin"
)

func badRequest(c *gin.Context, message string, err error) {
	resp := models.ErrorResponse{
		Error:   "INVALID_INPUT",
		Message: message,
	}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "NOT_FOUND",
		Message: message,
	})
}

// respondError maps a data layer error onto a status code and error body.
func respondError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		notFound(c, message)
	case errors.Is(err, models.ErrInvalidStatus):
		badRequest(c, message, err)
	case errors.Is(err, models.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "EMPTY_CART",
			Message: message,
		})
	case errors.Is(err, models.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "STORAGE_UNAVAILABLE",
			Message: message,
			Details: err.Error(),
		})
	default:
		log.Printf("%s: %v", message, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "STORAGE_ERROR",
			Message: message,
			Details: err.Error(),
		})
	}
}
