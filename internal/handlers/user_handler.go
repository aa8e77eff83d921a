package handlers

import (
	"net/http"

	"order_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authService services.AuthService
}

func NewUserHandler(authService services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

func (h *UserHandler) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBindError(c, err)
		return
	}

	result, err := h.authService.Login(input)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) Me(c *gin.Context) {
	claims := getClaims(c)
	c.JSON(http.StatusOK, gin.H{
		"user_id":   claims.UserID,
		"role_name": claims.RoleName,
		"entity_id": claims.EntityID,
	})
}
