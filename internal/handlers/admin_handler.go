package handlers

import (
	"net/http"

	"order_manager/internal/services"
	"order_manager/internal/storage"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService services.AdminService
	fileStore    *storage.FileStore
}

func NewAdminHandler(adminService services.AdminService, fileStore *storage.FileStore) *AdminHandler {
	return &AdminHandler{adminService: adminService, fileStore: fileStore}
}

func (h *AdminHandler) CreateDistributor(c *gin.Context) {
	var input services.CreateDistributorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBindError(c, err)
		return
	}

	distributor, err := h.adminService.CreateDistributor(input)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, distributor)
}

// UploadDistributorAttachment stores a multipart document (GST certificate,
// PAN copy) against the distributor profile.
func (h *AdminHandler) UploadDistributorAttachment(c *gin.Context) {
	file, err := c.FormFile("attachment")
	if err != nil {
		renderBindError(c, err)
		return
	}

	name, err := h.fileStore.Save(c, file)
	if err != nil {
		renderError(c, err)
		return
	}

	distributor, err := h.adminService.AttachDistributorFile(c.Param("id"), name)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, distributor)
}

func (h *AdminHandler) CreateUserRole(c *gin.Context) {
	var req struct {
		UserRole string `json:"user_role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	role, err := h.adminService.CreateUserRole(req.UserRole)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (h *AdminHandler) CreateExecutive(c *gin.Context) {
	var input services.CreateExecutiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBindError(c, err)
		return
	}

	executive, err := h.adminService.CreateExecutive(input)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, executive)
}

func (h *AdminHandler) CreateManager(c *gin.Context) {
	var input services.CreateManagerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBindError(c, err)
		return
	}

	manager, err := h.adminService.CreateManager(input)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, manager)
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var input services.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBindError(c, err)
		return
	}

	product, err := h.adminService.CreateProduct(input)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *AdminHandler) CreateProductCategory(c *gin.Context) {
	var req struct {
		CategoryName string `json:"category_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	category, err := h.adminService.CreateProductCategory(req.CategoryName)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *AdminHandler) CreateProductSubCategory(c *gin.Context) {
	var req struct {
		SubCategoryName   string `json:"sub_category_name" binding:"required"`
		ProductCategoryID string `json:"product_category_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	subCategory, err := h.adminService.CreateProductSubCategory(req.SubCategoryName, req.ProductCategoryID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subCategory)
}

// UploadProductImage accepts a multipart image, stores it on disk and links
// it to the product.
func (h *AdminHandler) UploadProductImage(c *gin.Context) {
	productID := c.Param("id")
	file, err := c.FormFile("image")
	if err != nil {
		renderBindError(c, err)
		return
	}

	name, err := h.fileStore.Save(c, file)
	if err != nil {
		renderError(c, err)
		return
	}

	image, err := h.adminService.AddProductImage(productID, name)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *AdminHandler) CreatePaymentTerm(c *gin.Context) {
	var req struct {
		Label string `json:"label" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	term, err := h.adminService.CreatePaymentTerm(req.Label)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, term)
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.adminService.ListProducts()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *AdminHandler) ListProductImages(c *gin.Context) {
	images, err := h.adminService.ListProductImages(c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}

func (h *AdminHandler) ListPaymentTerms(c *gin.Context) {
	terms, err := h.adminService.ListPaymentTerms()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_terms": terms})
}
