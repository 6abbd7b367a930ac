package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gflow-server/internal/infrastructure/logger"
	"gflow-server/internal/usecase"
)

// Handler carries the use cases behind every route. All state lives in
// the document store; nothing is cached between requests.
type Handler struct {
	products *usecase.ProductUseCase
	users    *usecase.UserUseCase
	orders   *usecase.OrderUseCase
	health   func(ctx context.Context) error
	logger   *logger.Logger
}

func NewHandler(
	products *usecase.ProductUseCase,
	users *usecase.UserUseCase,
	orders *usecase.OrderUseCase,
	health func(ctx context.Context) error,
	logger *logger.Logger,
) *Handler {
	return &Handler{
		products: products,
		users:    users,
		orders:   orders,
		health:   health,
		logger:   logger,
	}
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.health != nil {
		if err := h.health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Message: "Database connection failed",
				Error:   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "gflow-server",
		"timestamp": time.Now().UTC(),
	})
}
