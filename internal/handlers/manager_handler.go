package handlers

import (
	"net/http"
	"time"

	"order_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type ManagerHandler struct {
	managerService services.ManagerService
}

func NewManagerHandler(managerService services.ManagerService) *ManagerHandler {
	return &ManagerHandler{managerService: managerService}
}

func (h *ManagerHandler) ListOrders(c *gin.Context) {
	orders, err := h.managerService.ListOrders(getClaims(c).EntityID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *ManagerHandler) ListExecutives(c *gin.Context) {
	executives, err := h.managerService.ListExecutives(getClaims(c).EntityID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"executives": executives})
}

func (h *ManagerHandler) ExportOrders(c *gin.Context) {
	data, err := h.managerService.ExportOrders(getClaims(c).EntityID)
	if err != nil {
		renderError(c, err)
		return
	}

	filename := "orders-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
