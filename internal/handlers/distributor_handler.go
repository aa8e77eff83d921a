package handlers

import (
	"errors"
	"io"
	"net/http"

	"order_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type DistributorHandler struct {
	distributorService services.DistributorService
}

func NewDistributorHandler(distributorService services.DistributorService) *DistributorHandler {
	return &DistributorHandler{distributorService: distributorService}
}

func (h *DistributorHandler) AddToCart(c *gin.Context) {
	var input services.AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBindError(c, err)
		return
	}

	item, err := h.distributorService.AddToCart(getClaims(c).EntityID, input)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *DistributorHandler) GetCart(c *gin.Context) {
	items, err := h.distributorService.GetCart(getClaims(c).EntityID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": items})
}

// PlaceOrders checks out the whole cart. The body only carries optional
// overrides, so an empty request is fine.
func (h *DistributorHandler) PlaceOrders(c *gin.Context) {
	var input services.PlaceOrdersInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		renderBindError(c, err)
		return
	}

	result, err := h.distributorService.PlaceOrders(getClaims(c).EntityID, input)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *DistributorHandler) ListOrders(c *gin.Context) {
	orders, err := h.distributorService.ListOrders(getClaims(c).EntityID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *DistributorHandler) GetOrder(c *gin.Context) {
	order, err := h.distributorService.GetOrder(getClaims(c).EntityID, c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *DistributorHandler) AcceptOrder(c *gin.Context) {
	order, err := h.distributorService.AcceptOrder(getClaims(c).EntityID, c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *DistributorHandler) RejectOrder(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	order, err := h.distributorService.RejectOrder(getClaims(c).EntityID, c.Param("id"), req.Reason)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
