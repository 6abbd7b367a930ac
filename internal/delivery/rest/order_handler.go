package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gflow-server/internal/domain/entities"
)

func (h *Handler) PlaceOrder(c *gin.Context) {
	var order entities.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	created, err := h.orders.PlaceOrder(c.Request.Context(), &order)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Order placed successfully",
		Data:    created,
	})
}

func (h *Handler) AdminOrders(c *gin.Context) {
	orders, err := h.orders.AllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Admin access granted",
		Data:    orders,
	})
}

func (h *Handler) SupplierOrders(c *gin.Context) {
	orders, err := h.orders.SupplierOrders(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Manager orders fetched successfully",
		Data:    orders,
	})
}

func (h *Handler) BuyerOrders(c *gin.Context) {
	orders, err := h.orders.BuyerOrders(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Buyer orders fetched successfully",
		Data:    orders,
	})
}

func (h *Handler) ApproveOrder(c *gin.Context) {
	if err := h.orders.ApproveOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Order approved successfully"})
}

func (h *Handler) RejectOrder(c *gin.Context) {
	if err := h.orders.RejectOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Order rejected successfully"})
}

func (h *Handler) CancelOrder(c *gin.Context) {
	if err := h.orders.CancelOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Order cancelled successfully"})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.orders.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Order deleted successfully"})
}
