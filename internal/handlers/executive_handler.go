package handlers

import (
	"net/http"

	"order_manager/internal/services"

	"github.com/gin-gonic/gin"
)

// ExecutiveHandler serves both the sales negotiation endpoints and the
// manufacturing scan endpoints.
type ExecutiveHandler struct {
	salesService services.SalesService
	scanService  services.ScanService
}

func NewExecutiveHandler(salesService services.SalesService, scanService services.ScanService) *ExecutiveHandler {
	return &ExecutiveHandler{salesService: salesService, scanService: scanService}
}

func (h *ExecutiveHandler) AssignOrder(c *gin.Context) {
	var req struct {
		SalesExecutiveID string `json:"sales_executive_id" binding:"required"`
		OrderID          string `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	rel, err := h.salesService.AssignOrder(req.SalesExecutiveID, req.OrderID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rel)
}

func bindOrderFilter(c *gin.Context) (services.OrderListFilter, error) {
	var filter services.OrderListFilter
	err := c.ShouldBindQuery(&filter)
	return filter, err
}

func (h *ExecutiveHandler) ListAssignedOrders(c *gin.Context) {
	filter, err := bindOrderFilter(c)
	if err != nil {
		renderBindError(c, err)
		return
	}

	rels, err := h.salesService.ListAssignedOrders(getClaims(c).EntityID, filter)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": rels})
}

func (h *ExecutiveHandler) ListOrdersUnderProcess(c *gin.Context) {
	filter, err := bindOrderFilter(c)
	if err != nil {
		renderBindError(c, err)
		return
	}

	rels, err := h.salesService.ListOrdersUnderProcess(getClaims(c).EntityID, filter)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": rels})
}

func (h *ExecutiveHandler) ListAcceptedOrders(c *gin.Context) {
	orders, err := h.salesService.ListDecidedOrders(getClaims(c).EntityID, true)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *ExecutiveHandler) ListRejectedOrders(c *gin.Context) {
	orders, err := h.salesService.ListDecidedOrders(getClaims(c).EntityID, false)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *ExecutiveHandler) AddLineItems(c *gin.Context) {
	var req struct {
		LineItems []services.LineItemInput `json:"line_items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	order, err := h.salesService.AddLineItems(getClaims(c).EntityID, c.Param("id"), req.LineItems)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *ExecutiveHandler) UpdateOrderDetails(c *gin.Context) {
	var input services.UpdateOrderDetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBindError(c, err)
		return
	}

	order, err := h.salesService.UpdateOrderDetails(getClaims(c).EntityID, c.Param("id"), input)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *ExecutiveHandler) AddSapReferenceNumber(c *gin.Context) {
	var req struct {
		SapReferenceNumber string `json:"sap_reference_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	order, err := h.salesService.AddSapReferenceNumber(getClaims(c).EntityID, c.Param("id"), req.SapReferenceNumber)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Stores and later-stage scanning.

func (h *ExecutiveHandler) AssignStoresOrder(c *gin.Context) {
	var req struct {
		StoresExecutiveID string `json:"stores_executive_id" binding:"required"`
		OrderID           string `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	rel, err := h.scanService.AssignStoresOrder(req.StoresExecutiveID, req.OrderID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rel)
}

func (h *ExecutiveHandler) ListStoresOrders(c *gin.Context) {
	rels, err := h.scanService.ListStoresOrders(getClaims(c).EntityID, c.Query("search"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": rels})
}

func (h *ExecutiveHandler) ScanStores(c *gin.Context) {
	var req struct {
		OrderID      string `json:"order_id" binding:"required"`
		UnitUniqueID string `json:"unit_unique_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	unit, err := h.scanService.ScanStores(getClaims(c).EntityID, req.OrderID, req.UnitUniqueID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, unit)
}

func (h *ExecutiveHandler) ScanStage(c *gin.Context) {
	var req struct {
		ProductID    string `json:"product_id" binding:"required"`
		UnitUniqueID string `json:"unit_unique_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	unit, err := h.scanService.ScanStage(getClaims(c).RoleName, req.ProductID, req.UnitUniqueID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

func (h *ExecutiveHandler) StageProgress(c *gin.Context) {
	count, err := h.scanService.StageProgress(getClaims(c).RoleName, c.Param("product_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scanned": count})
}
