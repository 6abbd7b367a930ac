package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gflow-server/internal/domain/repositories"
	"gflow-server/internal/usecase"
)

type SuccessResponse struct {
	Success bool        `json:"success,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// respondError maps use-case and repository errors onto the HTTP error
// taxonomy: 400 bad input, 404 missing record, 409 conflict, 500 rest.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Record not found"})
	case errors.Is(err, repositories.ErrDuplicateUser):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "User already exists"})
	case errors.Is(err, repositories.ErrInvalidID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid record id"})
	case errors.Is(err, usecase.ErrMissingFields):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Missing required fields"})
	case errors.Is(err, usecase.ErrMissingEmail),
		errors.Is(err, usecase.ErrInvalidBuyerEmail),
		errors.Is(err, usecase.ErrInvalidSupplierEmail):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email is required"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Server Error", Error: err.Error()})
	}
}
