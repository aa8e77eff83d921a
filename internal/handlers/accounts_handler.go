package handlers

import (
	"net/http"

	"order_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type AccountsHandler struct {
	accountsService services.AccountsService
}

func NewAccountsHandler(accountsService services.AccountsService) *AccountsHandler {
	return &AccountsHandler{accountsService: accountsService}
}

func (h *AccountsHandler) ListAdvancePendingOrders(c *gin.Context) {
	orders, err := h.accountsService.ListAdvancePendingOrders()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *AccountsHandler) ApproveAdvancePayment(c *gin.Context) {
	order, err := h.accountsService.ApproveAdvancePayment(c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
