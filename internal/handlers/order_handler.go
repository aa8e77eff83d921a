package handlers

import (
	"net/http"

	"order_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetLineItems(c *gin.Context) {
	items, err := h.orderService.GetLineItems(c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"line_items": items})
}

func (h *OrderHandler) UnitLabel(c *gin.Context) {
	png, err := h.orderService.UnitLabel(c.Param("unit_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
