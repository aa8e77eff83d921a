package services

import (
	"bytes"
	"strconv"

	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/repository"

	"github.com/xuri/excelize/v2"
)

type ManagerService interface {
	// ListOrders returns orders whose distributor state falls inside the
	// manager's work locations.
	ListOrders(managerID string) ([]models.Order, error)
	ListExecutives(managerID string) ([]models.Executive, error)
	// ExportOrders renders the manager's orders as an XLSX workbook.
	ExportOrders(managerID string) ([]byte, error)
}

type managerService struct {
	orderRepo     repository.OrderRepository
	executiveRepo repository.ExecutiveRepository
}

func NewManagerService(
	orderRepo repository.OrderRepository,
	executiveRepo repository.ExecutiveRepository,
) ManagerService {
	return &managerService{
		orderRepo:     orderRepo,
		executiveRepo: executiveRepo,
	}
}

func (s *managerService) getManager(managerID string) (*models.Manager, error) {
	manager, err := s.executiveRepo.GetManagerByID(managerID)
	if err != nil {
		return nil, apierror.New("manager profile not found", apierror.CodeUserNotFound)
	}
	return manager, nil
}

func (s *managerService) ListOrders(managerID string) ([]models.Order, error) {
	manager, err := s.getManager(managerID)
	if err != nil {
		return nil, err
	}
	if len(manager.WorkLocations) == 0 {
		return []models.Order{}, nil
	}

	orders, err := s.orderRepo.ListByDistributorStates(manager.WorkLocations)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return orders, nil
}

func (s *managerService) ListExecutives(managerID string) ([]models.Executive, error) {
	manager, err := s.getManager(managerID)
	if err != nil {
		return nil, err
	}
	executives, err := s.executiveRepo.ListByManager(manager.ID)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return executives, nil
}

var exportHeaders = []string{
	"Order ID", "Customer", "State", "Product", "Quantity", "Price",
	"Negotiation Status", "Sap Reference", "Deadline", "Created At",
}

func (s *managerService) ExportOrders(managerID string) ([]byte, error) {
	orders, err := s.ListOrders(managerID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orders"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, order := range orders {
		customerName, state := "", ""
		if order.Customer != nil {
			customerName = order.Customer.FullName
			state = order.Customer.State
		}
		productName := ""
		if order.Product != nil {
			productName = order.Product.ProductName
		}
		deadline := ""
		if order.DeadLine != nil {
			deadline = order.DeadLine.Format("2006-01-02")
		}

		values := []interface{}{
			order.ID, customerName, state, productName,
			strconv.Itoa(order.Quantity), order.Price.String(),
			order.SalesNegotiationStatus, order.SapReferenceNumber,
			deadline, order.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return buf.Bytes(), nil
}
