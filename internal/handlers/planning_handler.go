package handlers

import (
	"net/http"

	"order_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type PlanningHandler struct {
	planningService services.PlanningService
}

func NewPlanningHandler(planningService services.PlanningService) *PlanningHandler {
	return &PlanningHandler{planningService: planningService}
}

func (h *PlanningHandler) ListOrders(c *gin.Context) {
	orders, err := h.planningService.ListOrders()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *PlanningHandler) AddDeadlines(c *gin.Context) {
	var req struct {
		Deadlines []services.DeadlineInput `json:"deadlines" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	order, err := h.planningService.AddDeadlines(c.Param("id"), req.Deadlines)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
