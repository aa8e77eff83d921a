package services

import (
	"errors"
	"log"

	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/redis"
	"order_manager/internal/repository"
	"order_manager/internal/storage"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateDistributorInput struct {
	UserName          string `json:"user_name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	PhoneNumber       string `json:"phone_number" binding:"required"`
	Password          string `json:"password" binding:"required,min=8"`
	FullName          string `json:"full_name" binding:"required"`
	CompanyName       string `json:"company_name"`
	GSTNumber         string `json:"gst_number"`
	PanNumber         string `json:"pan_number"`
	AadharNumber      string `json:"aadhar_number"`
	PriorExperience   string `json:"prior_experience"`
	ShippingAddress   string `json:"shipping_address"`
	BillingAddress    string `json:"billing_address"`
	City              string `json:"city"`
	State             string `json:"state"`
	Pincode           string `json:"pincode"`
	AdditionalRemarks string `json:"additional_remarks"`
	Attachments       string `json:"attachments"`
}

type CreateExecutiveInput struct {
	UserName    string `json:"user_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required"`
	ManagerID   string `json:"manager_id"`
	EmployeeID  string `json:"employee_id"`
	Location    string `json:"location"`
}

type CreateManagerInput struct {
	UserName      string   `json:"user_name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	PhoneNumber   string   `json:"phone_number" binding:"required"`
	Password      string   `json:"password" binding:"required,min=8"`
	EmployeeID    string   `json:"employee_id"`
	WorkLocations []string `json:"work_locations"`
}

type CreateProductInput struct {
	ProductName          string          `json:"product_name" binding:"required"`
	Details              string          `json:"details"`
	Price                decimal.Decimal `json:"price" binding:"required"`
	GST                  decimal.Decimal `json:"gst"`
	Discount             decimal.Decimal `json:"discount"`
	ProductCategoryID    string          `json:"product_category_id"`
	ProductSubCategoryID string          `json:"product_sub_category_id"`
	ProductImage         string          `json:"product_image"`
}

// ProductImageView is a stored image with its content inlined for clients
// that render images from JSON payloads.
type ProductImageView struct {
	ID           string `json:"id"`
	ProductID    string `json:"product_id"`
	ProductImage string `json:"product_image"`
	Content      string `json:"content"`
}

type AdminService interface {
	CreateDistributor(input CreateDistributorInput) (*models.Distributor, error)
	AttachDistributorFile(distributorID, fileName string) (*models.Distributor, error)
	CreateUserRole(name string) (*models.UserRole, error)
	ListProductImages(productID string) ([]ProductImageView, error)
	CreateExecutive(input CreateExecutiveInput) (*models.Executive, error)
	CreateManager(input CreateManagerInput) (*models.Manager, error)
	CreateProduct(input CreateProductInput) (*models.Product, error)
	CreateProductCategory(name string) (*models.ProductCategory, error)
	CreateProductSubCategory(name, categoryID string) (*models.ProductSubCategory, error)
	AddProductImage(productID, imagePath string) (*models.ProductImage, error)
	CreatePaymentTerm(label string) (*models.PaymentTerm, error)
	ListProducts() ([]models.Product, error)
	ListPaymentTerms() ([]models.PaymentTerm, error)
}

type adminService struct {
	userRepo        repository.UserRepository
	distributorRepo repository.DistributorRepository
	executiveRepo   repository.ExecutiveRepository
	productRepo     repository.ProductRepository
	paymentTermRepo repository.PaymentTermRepository
	cache           *redis.Client
	fileStore       *storage.FileStore
}

func NewAdminService(
	userRepo repository.UserRepository,
	distributorRepo repository.DistributorRepository,
	executiveRepo repository.ExecutiveRepository,
	productRepo repository.ProductRepository,
	paymentTermRepo repository.PaymentTermRepository,
	cache *redis.Client,
	fileStore *storage.FileStore,
) AdminService {
	return &adminService{
		userRepo:        userRepo,
		distributorRepo: distributorRepo,
		executiveRepo:   executiveRepo,
		productRepo:     productRepo,
		paymentTermRepo: paymentTermRepo,
		cache:           cache,
		fileStore:       fileStore,
	}
}

// newUserForRole builds the login user for a profile row, rejecting duplicate
// email or phone before hashing the password.
func (s *adminService) newUserForRole(userName, email, phone, password, roleName string) (*models.User, error) {
	if _, err := s.userRepo.GetByEmailOrPhone(email, phone); err == nil {
		return nil, apierror.New("email or phone number already registered", apierror.CodeDuplicate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	role, err := s.userRepo.GetRoleByName(roleName)
	if err != nil {
		return nil, apierror.New("invalid user role", apierror.CodeInvalidRole)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	return &models.User{
		UserName:    userName,
		Email:       email,
		PhoneNumber: phone,
		Password:    string(hashed),
		UserRoleID:  role.ID,
		IsActive:    true,
	}, nil
}

func (s *adminService) CreateDistributor(input CreateDistributorInput) (*models.Distributor, error) {
	user, err := s.newUserForRole(input.UserName, input.Email, input.PhoneNumber, input.Password, models.RoleDistributor)
	if err != nil {
		return nil, err
	}

	distributor := &models.Distributor{
		FullName:          input.FullName,
		CompanyName:       input.CompanyName,
		GSTNumber:         input.GSTNumber,
		PanNumber:         input.PanNumber,
		AadharNumber:      input.AadharNumber,
		PriorExperience:   input.PriorExperience,
		ShippingAddress:   input.ShippingAddress,
		BillingAddress:    input.BillingAddress,
		City:              input.City,
		State:             input.State,
		Pincode:           input.Pincode,
		AdditionalRemarks: input.AdditionalRemarks,
		Attachments:       input.Attachments,
	}
	if err := s.distributorRepo.CreateWithUser(user, distributor); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	log.Printf("Created distributor %s (%s)", distributor.FullName, distributor.ID)
	return distributor, nil
}

func (s *adminService) AttachDistributorFile(distributorID, fileName string) (*models.Distributor, error) {
	distributor, err := s.distributorRepo.GetByID(distributorID)
	if err != nil {
		return nil, apierror.New("invalid distributor id", apierror.CodeInvalidID)
	}

	distributor.Attachments = fileName
	if err := s.distributorRepo.Update(distributor); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return distributor, nil
}

func (s *adminService) CreateUserRole(name string) (*models.UserRole, error) {
	if name == "" {
		return nil, apierror.New("role name is required", apierror.CodeInvalidInputs)
	}
	role := &models.UserRole{UserRole: name}
	if err := s.userRepo.CreateRole(role); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeDuplicate)
	}
	return role, nil
}

// ListProductImages inlines each stored file as base64 so mobile clients can
// render without a second round trip.
func (s *adminService) ListProductImages(productID string) ([]ProductImageView, error) {
	images, err := s.productRepo.GetImages(productID)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	views := make([]ProductImageView, 0, len(images))
	for _, image := range images {
		content, err := s.fileStore.ReadBase64(image.ProductImage)
		if err != nil {
			log.Printf("Warning: failed to read product image %s: %v", image.ProductImage, err)
			content = ""
		}
		views = append(views, ProductImageView{
			ID:           image.ID,
			ProductID:    image.ProductID,
			ProductImage: image.ProductImage,
			Content:      content,
		})
	}
	return views, nil
}

func (s *adminService) CreateExecutive(input CreateExecutiveInput) (*models.Executive, error) {
	switch input.Role {
	case models.RoleSalesExecutive, models.RoleStoresExecutive, models.RoleWindingExecutive,
		models.RoleAssemblyExecutive, models.RoleTestingExecutive, models.RolePackingExecutive,
		models.RoleQCExecutive:
	default:
		return nil, apierror.New("role "+input.Role+" is not an executive role", apierror.CodeInvalidRole)
	}

	user, err := s.newUserForRole(input.UserName, input.Email, input.PhoneNumber, input.Password, input.Role)
	if err != nil {
		return nil, err
	}

	executive := &models.Executive{
		ManagerID:  input.ManagerID,
		EmployeeID: input.EmployeeID,
		Location:   input.Location,
	}
	if err := s.executiveRepo.CreateWithUser(user, executive); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return executive, nil
}

func (s *adminService) CreateManager(input CreateManagerInput) (*models.Manager, error) {
	user, err := s.newUserForRole(input.UserName, input.Email, input.PhoneNumber, input.Password, models.RoleManager)
	if err != nil {
		return nil, err
	}

	manager := &models.Manager{
		EmployeeID:    input.EmployeeID,
		WorkLocations: input.WorkLocations,
	}
	if err := s.executiveRepo.CreateManagerWithUser(user, manager); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return manager, nil
}

func (s *adminService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	product := &models.Product{
		ProductName:          input.ProductName,
		Details:              input.Details,
		Price:                input.Price,
		GST:                  input.GST,
		Discount:             input.Discount,
		ProductCategoryID:    input.ProductCategoryID,
		ProductSubCategoryID: input.ProductSubCategoryID,
		ProductImage:         input.ProductImage,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return product, nil
}

func (s *adminService) CreateProductCategory(name string) (*models.ProductCategory, error) {
	category := &models.ProductCategory{CategoryName: name}
	if err := s.productRepo.CreateCategory(category); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeDuplicate)
	}
	return category, nil
}

func (s *adminService) CreateProductSubCategory(name, categoryID string) (*models.ProductSubCategory, error) {
	subCategory := &models.ProductSubCategory{SubCategoryName: name, ProductCategoryID: categoryID}
	if err := s.productRepo.CreateSubCategory(subCategory); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return subCategory, nil
}

func (s *adminService) AddProductImage(productID, imagePath string) (*models.ProductImage, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, apierror.New("invalid product id", apierror.CodeInvalidID)
	}
	image := &models.ProductImage{ProductID: productID, ProductImage: imagePath}
	if err := s.productRepo.AddImage(image); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	// Cached product payloads embed image lists; drop the stale copy.
	if s.cache != nil {
		if err := s.cache.DeleteProduct(productID); err != nil {
			log.Printf("Warning: failed to invalidate product cache: %v", err)
		}
	}
	return image, nil
}

func (s *adminService) CreatePaymentTerm(label string) (*models.PaymentTerm, error) {
	term := &models.PaymentTerm{Label: label}
	if err := s.paymentTermRepo.Create(term); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeDuplicate)
	}
	return term, nil
}

func (s *adminService) ListProducts() ([]models.Product, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return products, nil
}

func (s *adminService) ListPaymentTerms() ([]models.PaymentTerm, error) {
	terms, err := s.paymentTermRepo.GetAll()
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return terms, nil
}
