package services

import (
	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/repository"

	qrcode "github.com/skip2/go-qrcode"
)

type OrderService interface {
	GetOrder(orderID string) (*models.Order, error)
	GetLineItems(orderID string) ([]models.LineItem, error)
	// UnitLabel renders a QR code PNG for a manufactured unit's id, sized
	// for thermal label printers.
	UnitLabel(unitUniqueID string) ([]byte, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	lineItemRepo repository.LineItemRepository
	scannedRepo  repository.ScannedProductRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	lineItemRepo repository.LineItemRepository,
	scannedRepo repository.ScannedProductRepository,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		lineItemRepo: lineItemRepo,
		scannedRepo:  scannedRepo,
	}
}

func (s *orderService) GetOrder(orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDWithLineItems(orderID)
	if err != nil {
		return nil, apierror.New("invalid order id", apierror.CodeInvalidID)
	}
	return order, nil
}

func (s *orderService) GetLineItems(orderID string) ([]models.LineItem, error) {
	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		return nil, apierror.New("invalid order id", apierror.CodeInvalidID)
	}
	items, err := s.lineItemRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return items, nil
}

func (s *orderService) UnitLabel(unitUniqueID string) ([]byte, error) {
	if unitUniqueID == "" {
		return nil, apierror.New("unit unique id is required", apierror.CodeInvalidInputs)
	}
	if _, err := s.scannedRepo.GetByUnitID(unitUniqueID); err != nil {
		return nil, apierror.New("invalid unit unique id", apierror.CodeInvalidID)
	}
	png, err := qrcode.Encode(unitUniqueID, qrcode.Medium, 256)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return png, nil
}
