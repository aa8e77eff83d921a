package services

import (
	"errors"
	"log"
	"time"

	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/redis"
	"order_manager/internal/repository"
	"order_manager/internal/storage"
	"order_manager/internal/workflow"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AddToCartInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type PlaceOrdersInput struct {
	ShippingAddress string `json:"shipping_address"`
	BillingAddress  string `json:"billing_address"`
	PaymentTermsID  string `json:"payment_terms_id"`
	Remarks         string `json:"remarks"`
}

type PlaceOrdersResult struct {
	OrdersCreated int            `json:"orders_created"`
	Orders        []models.Order `json:"orders"`
}

// CartItemView is a cart row with the product's stored images inlined as
// base64 so clients can render the cart without extra round trips.
type CartItemView struct {
	models.Cart
	ProductImages []string `json:"product_images,omitempty"`
}

type DistributorService interface {
	AddToCart(customerID string, input AddToCartInput) (*models.Cart, error)
	GetCart(customerID string) ([]CartItemView, error)
	// PlaceOrders converts every cart row into an order at the product's
	// current price, falling back to the distributor's registered
	// addresses when the request carries none. Cart rows whose product
	// vanished are skipped; an empty cart yields "0 orders created", not
	// an error.
	PlaceOrders(customerID string, input PlaceOrdersInput) (*PlaceOrdersResult, error)
	ListOrders(customerID string) ([]models.Order, error)
	GetOrder(customerID, orderID string) (*models.Order, error)
	AcceptOrder(customerID, orderID string) (*models.Order, error)
	RejectOrder(customerID, orderID, reason string) (*models.Order, error)
}

type distributorService struct {
	cartRepo        repository.CartRepository
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	distributorRepo repository.DistributorRepository
	relationRepo    repository.RelationRepository
	cache           *redis.Client
	fileStore       *storage.FileStore
	cacheTTL        time.Duration
}

func NewDistributorService(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	distributorRepo repository.DistributorRepository,
	relationRepo repository.RelationRepository,
	cache *redis.Client,
	fileStore *storage.FileStore,
	cacheTTLSeconds int,
) DistributorService {
	return &distributorService{
		cartRepo:        cartRepo,
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		distributorRepo: distributorRepo,
		relationRepo:    relationRepo,
		cache:           cache,
		fileStore:       fileStore,
		cacheTTL:        time.Duration(cacheTTLSeconds) * time.Second,
	}
}

func (s *distributorService) lookupProduct(productID string) (*models.Product, error) {
	if s.cache != nil {
		var cached models.Product
		if err := s.cache.GetProduct(productID, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.New("invalid product id", apierror.CodeInvalidID)
		}
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	if s.cache != nil {
		if err := s.cache.SetProduct(productID, product, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache product: %v", err)
		}
	}
	return product, nil
}

func (s *distributorService) AddToCart(customerID string, input AddToCartInput) (*models.Cart, error) {
	if _, err := s.lookupProduct(input.ProductID); err != nil {
		return nil, err
	}

	item := &models.Cart{
		CustomerID: customerID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return item, nil
}

func (s *distributorService) GetCart(customerID string) ([]CartItemView, error) {
	items, err := s.cartRepo.GetByCustomer(customerID)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	views := make([]CartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, CartItemView{Cart: item, ProductImages: s.inlineProductImages(item.ProductID)})
	}
	return views, nil
}

// inlineProductImages loads the stored image files for a product. Missing or
// unreadable files are skipped so a stale row never breaks the cart.
func (s *distributorService) inlineProductImages(productID string) []string {
	if s.fileStore == nil {
		return nil
	}
	images, err := s.productRepo.GetImages(productID)
	if err != nil {
		log.Printf("Warning: failed to load images for product %s: %v", productID, err)
		return nil
	}

	var encoded []string
	for _, image := range images {
		content, err := s.fileStore.ReadBase64(image.ProductImage)
		if err != nil {
			log.Printf("Warning: failed to read image %s: %v", image.ProductImage, err)
			continue
		}
		encoded = append(encoded, content)
	}
	return encoded
}

func (s *distributorService) PlaceOrders(customerID string, input PlaceOrdersInput) (*PlaceOrdersResult, error) {
	distributor, err := s.distributorRepo.GetByID(customerID)
	if err != nil {
		return nil, apierror.New("invalid distributor id", apierror.CodeInvalidID)
	}

	// Addresses omitted from the request fall back to the distributor's
	// registered defaults.
	shipping := input.ShippingAddress
	if shipping == "" {
		shipping = distributor.ShippingAddress
	}
	billing := input.BillingAddress
	if billing == "" {
		billing = distributor.BillingAddress
	}

	items, err := s.cartRepo.GetByCustomer(customerID)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	var orders []models.Order
	var consumedCartIDs []string
	for _, item := range items {
		// Price is re-read at checkout so stale cart rows never lock in
		// an old price.
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, apierror.Wrap(err, apierror.CodeInternal)
		}

		total := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		orders = append(orders, models.Order{
			CustomerID:      customerID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			Price:           total,
			Discount:        product.Discount,
			ShippingAddress: shipping,
			BillingAddress:  billing,
			PaymentTermsID:  input.PaymentTermsID,
			Remarks:         input.Remarks,
			OrderStatus:     models.StringArray{workflow.OrderSubmitted},
			ProductStatus:   models.StringArray{workflow.ProductToBeProcessed},
			IsActive:        true,
			Version:         1,
		})
		consumedCartIDs = append(consumedCartIDs, item.ID)
	}

	if err := s.cartRepo.PlaceOrders(orders, consumedCartIDs, customerID); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	log.Printf("Distributor %s placed %d orders", customerID, len(orders))
	return &PlaceOrdersResult{OrdersCreated: len(orders), Orders: orders}, nil
}

func (s *distributorService) ListOrders(customerID string) ([]models.Order, error) {
	orders, err := s.orderRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return orders, nil
}

func (s *distributorService) GetOrder(customerID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDWithLineItems(orderID)
	if err != nil {
		return nil, apierror.New("invalid order id", apierror.CodeInvalidID)
	}
	if order.CustomerID != customerID {
		return nil, apierror.New("order does not belong to this distributor", apierror.CodeUnauthorized)
	}
	return order, nil
}

func (s *distributorService) getOwnedOrder(customerID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apierror.New("invalid order id", apierror.CodeInvalidID)
	}
	if order.CustomerID != customerID {
		return nil, apierror.New("order does not belong to this distributor", apierror.CodeUnauthorized)
	}
	return order, nil
}

func (s *distributorService) AcceptOrder(customerID, orderID string) (*models.Order, error) {
	order, err := s.getOwnedOrder(customerID, orderID)
	if err != nil {
		return nil, err
	}

	from := workflow.NegotiationStatus(order.SalesNegotiationStatus)
	if err := workflow.ValidateNegotiationTransition(from, workflow.NegotiationNegotiated); err != nil {
		return nil, err
	}

	order.SalesNegotiationStatus = string(workflow.NegotiationNegotiated)
	order.ApprovedByCustomer = true
	order.OrderStatus = append(order.OrderStatus, workflow.OrderConfirmed)
	order.ProductStatus = append(order.ProductStatus, workflow.ProductOrderConfirmed)
	if err := s.orderRepo.UpdateWithVersion(order); err != nil {
		return nil, err
	}

	// Acceptance closes out the executive's claim on the order.
	if rel, err := s.relationRepo.GetActiveSalesRelationByOrder(orderID); err == nil {
		if err := s.relationRepo.DeactivateSalesRelation(rel); err != nil {
			return nil, apierror.Wrap(err, apierror.CodeInternal)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return order, nil
}

func (s *distributorService) RejectOrder(customerID, orderID, reason string) (*models.Order, error) {
	order, err := s.getOwnedOrder(customerID, orderID)
	if err != nil {
		return nil, err
	}

	from := workflow.NegotiationStatus(order.SalesNegotiationStatus)
	if err := workflow.ValidateNegotiationTransition(from, workflow.NegotiationRejected); err != nil {
		return nil, err
	}

	order.SalesNegotiationStatus = string(workflow.NegotiationRejected)
	order.ApprovedByCustomer = false
	order.Reason = reason
	order.OrderStatus = append(order.OrderStatus, workflow.OrderAcceptanceRejected)
	order.ProductStatus = append(order.ProductStatus, workflow.ProductAcceptanceRejected)
	if err := s.orderRepo.UpdateWithVersion(order); err != nil {
		return nil, err
	}
	return order, nil
}
