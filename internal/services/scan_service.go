package services

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/repository"
	"order_manager/internal/workflow"

	"gorm.io/gorm"
)

type ScanService interface {
	// AssignStoresOrder hands a confirmed order to a stores executive for
	// material issue.
	AssignStoresOrder(storesExecutiveID, orderID string) (*models.StoresExecOrderRelation, error)
	// ListStoresOrders lists the executive's active assignments, optionally
	// narrowed by an order id or product name fragment.
	ListStoresOrders(storesExecutiveID, search string) ([]models.StoresExecOrderRelation, error)
	// ScanStores registers one physical unit against the order. Scanning
	// past the order quantity is refused.
	ScanStores(storesExecutiveID, orderID, unitUniqueID string) (*models.ScannedProduct, error)
	// ScanStage claims the oldest unit that has not passed the caller's
	// stage yet and stamps it with the scanned unit id.
	ScanStage(roleName, productID, unitUniqueID string) (*models.ScannedProduct, error)
	StageProgress(roleName, productID string) (int64, error)
}

type scanService struct {
	orderRepo    repository.OrderRepository
	relationRepo repository.RelationRepository
	scannedRepo  repository.ScannedProductRepository
	productRepo  repository.ProductRepository
}

func NewScanService(
	orderRepo repository.OrderRepository,
	relationRepo repository.RelationRepository,
	scannedRepo repository.ScannedProductRepository,
	productRepo repository.ProductRepository,
) ScanService {
	return &scanService{
		orderRepo:    orderRepo,
		relationRepo: relationRepo,
		scannedRepo:  scannedRepo,
		productRepo:  productRepo,
	}
}

func (s *scanService) AssignStoresOrder(storesExecutiveID, orderID string) (*models.StoresExecOrderRelation, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apierror.New("invalid order id", apierror.CodeInvalidID)
	}
	if !order.ApprovedByCustomer || !order.ApprovedByPlanning {
		return nil, apierror.New("order is not ready for material issue", apierror.CodeInvalidTransition)
	}

	if _, err := s.relationRepo.GetActiveStoresRelation(storesExecutiveID, orderID); err == nil {
		return nil, apierror.New("order already assigned to this stores executive", apierror.CodeDuplicate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	order.ProductStatus = append(order.ProductStatus, workflow.ProductPlanningMaterialIssue)
	if err := s.orderRepo.UpdateWithVersion(order); err != nil {
		return nil, err
	}

	rel := &models.StoresExecOrderRelation{
		StoresExecutiveID: storesExecutiveID,
		OrderID:           orderID,
		IsActive:          true,
	}
	if err := s.relationRepo.CreateStoresRelation(rel); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return rel, nil
}

func (s *scanService) ListStoresOrders(storesExecutiveID, search string) ([]models.StoresExecOrderRelation, error) {
	rels, err := s.relationRepo.ListStoresRelations(storesExecutiveID)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	if search == "" {
		return rels, nil
	}

	needle := strings.ToLower(search)
	matched := make([]models.StoresExecOrderRelation, 0, len(rels))
	for _, rel := range rels {
		if strings.Contains(strings.ToLower(rel.OrderID), needle) {
			matched = append(matched, rel)
			continue
		}
		if rel.Order != nil && rel.Order.Product != nil &&
			strings.Contains(strings.ToLower(rel.Order.Product.ProductName), needle) {
			matched = append(matched, rel)
		}
	}
	return matched, nil
}

func (s *scanService) ScanStores(storesExecutiveID, orderID, unitUniqueID string) (*models.ScannedProduct, error) {
	if unitUniqueID == "" {
		return nil, apierror.New("unit unique id is required", apierror.CodeInvalidInputs)
	}

	rel, err := s.relationRepo.GetActiveStoresRelation(storesExecutiveID, orderID)
	if err != nil {
		return nil, apierror.New("order is not assigned to this stores executive", apierror.CodeUnauthorized)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apierror.New("invalid order id", apierror.CodeInvalidID)
	}
	if rel.TotalScanned >= order.Quantity {
		return nil, apierror.New("all units for this order are already scanned", apierror.CodeOrderLimit)
	}

	product, err := s.productRepo.GetByID(order.ProductID)
	if err != nil {
		return nil, apierror.New("invalid product id", apierror.CodeInvalidID)
	}

	unit := &models.ScannedProduct{
		ProductID:          order.ProductID,
		ProductName:        product.ProductName,
		HeadSize:           strconv.Itoa(order.HeadSize),
		MotorHP:            order.MotorType,
		Current:            order.Current,
		StoresUnitUniqueID: &unitUniqueID,
	}
	if err := s.scannedRepo.CreateUnit(unit); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	rel.TotalScanned++
	rel.UnitUniqueID = unitUniqueID
	rel.IsUnderProcess = rel.TotalScanned < order.Quantity
	if err := s.relationRepo.UpdateStoresRelation(rel); err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	if rel.TotalScanned == order.Quantity {
		order.ApprovedByStores = true
		order.StoresStatus = "COMPLETED"
		order.ProductStatus = append(order.ProductStatus, workflow.ProductPendingWinding)
		if err := s.orderRepo.UpdateWithVersion(order); err != nil {
			return nil, err
		}
		log.Printf("Order %s fully scanned by stores executive %s", orderID, storesExecutiveID)
	}
	return unit, nil
}

func (s *scanService) ScanStage(roleName, productID, unitUniqueID string) (*models.ScannedProduct, error) {
	if unitUniqueID == "" {
		return nil, apierror.New("unit unique id is required", apierror.CodeInvalidInputs)
	}

	stage, err := workflow.StageForRole(roleName)
	if err != nil {
		return nil, err
	}
	if stage.IsEntry() {
		return nil, apierror.New("stores scans are recorded per order", apierror.CodeInvalidInputs)
	}

	// Stores issues exactly one row per unit, so the stage can never stamp
	// more units than stores created.
	issued, err := s.scannedRepo.CountByStage(productID, workflow.StageStores)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	stamped, err := s.scannedRepo.CountByStage(productID, stage)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	if issued > 0 && stamped >= issued {
		return nil, apierror.New("all issued units are already scanned at this stage", apierror.CodeOrderLimit)
	}

	unit, err := s.scannedRepo.ClaimOldestUnclaimed(productID, unitUniqueID, stage)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	return unit, nil
}

func (s *scanService) StageProgress(roleName, productID string) (int64, error) {
	stage, err := workflow.StageForRole(roleName)
	if err != nil {
		return 0, err
	}
	count, err := s.scannedRepo.CountByStage(productID, stage)
	if err != nil {
		return 0, apierror.Wrap(err, apierror.CodeInternal)
	}
	return count, nil
}
