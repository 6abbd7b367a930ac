package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gflow-server/internal/domain/entities"
)

func (h *Handler) CreateProduct(c *gin.Context) {
	var product entities.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	created, err := h.products.CreateProduct(c.Request.Context(), &product)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Product added successfully",
		Data:    created,
	})
}

func (h *Handler) HomeProducts(c *gin.Context) {
	products, err := h.products.HomeProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Latest products fetched successfully",
		Data:    products,
	})
}

func (h *Handler) AllProducts(c *gin.Context) {
	products, err := h.products.AllProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Products fetched successfully",
		Data:    products,
	})
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Successfully fetched product by id",
		Data:    product,
	})
}

func (h *Handler) RefreshProduct(c *gin.Context) {
	if err := h.products.RefreshProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Product refreshed successfully"})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.products.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Product deleted successfully"})
}

// AdminProducts serves the dashboard listing; the Admin role gate is
// applied in the route table.
func (h *Handler) AdminProducts(c *gin.Context) {
	products, err := h.products.AllProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Admin access granted",
		Data:    products,
	})
}

func (h *Handler) SupplierProducts(c *gin.Context) {
	products, err := h.products.SupplierProducts(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Manager products fetched successfully",
		Data:    products,
	})
}
