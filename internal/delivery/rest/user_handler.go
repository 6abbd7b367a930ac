package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gflow-server/internal/domain/entities"
)

func (h *Handler) RegisterUser(c *gin.Context) {
	var user entities.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	created, err := h.users.RegisterUser(c.Request.Context(), &user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "User saved successfully",
		Data:    created,
	})
}

// AllUsers returns the bare record list, the shape the dashboard has
// always consumed.
func (h *Handler) AllUsers(c *gin.Context) {
	users, err := h.users.AllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) ApproveUser(c *gin.Context) {
	if err := h.users.ApproveUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Update Status Successfully"})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.users.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "User deleted successfully"})
}

// Profile returns the caller's own user record, looked up by the email
// the Identity Verifier attached to the request.
func (h *Handler) Profile(c *gin.Context) {
	email, ok := VerifiedEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized access"})
		return
	}

	user, err := h.users.Profile(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "User fetched successfully",
		Data:    user,
	})
}
