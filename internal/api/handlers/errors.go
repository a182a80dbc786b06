package handlers

import (
	"errors"
	"net/http"

	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// InsufficientStockResponse is returned with 422 when a deduction exceeds the stock
type InsufficientStockResponse struct {
	Error     string `json:"error"`
	Component string `json:"component"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// respondError writes the status matching the error kind
func respondError(c *gin.Context, err error) {
	var stockErr *apperrors.InsufficientStockError
	switch {
	case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err), errors.Is(err, apperrors.ErrNothingToExport):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusUnprocessableEntity, InsufficientStockResponse{
			Error:     err.Error(),
			Component: stockErr.Component,
			Requested: stockErr.Requested,
			Available: stockErr.Available,
		})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// parseUUIDParam reads a UUID path parameter, answering 400 when it is malformed
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, answering 400 when it is not valid JSON
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}
