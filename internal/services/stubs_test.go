package services

import (
	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/repository"
	"order_manager/internal/workflow"

	"gorm.io/gorm"
)

// In-memory repository stubs. Each embeds the interface so only the methods
// a test exercises need an implementation.

type stubOrderRepo struct {
	repository.OrderRepository
	orders   map[string]*models.Order
	conflict bool
	updates  int

	planningSentinel string
	planningOrders   []models.Order
}

func newStubOrderRepo(orders ...*models.Order) *stubOrderRepo {
	repo := &stubOrderRepo{orders: make(map[string]*models.Order)}
	for _, order := range orders {
		repo.orders[order.ID] = order
	}
	return repo
}

func (s *stubOrderRepo) GetByID(id string) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *stubOrderRepo) UpdateWithVersion(order *models.Order) error {
	if s.conflict {
		return apierror.New("order was modified concurrently, please retry", apierror.CodeConflict)
	}
	s.updates++
	order.Version++
	copied := *order
	s.orders[order.ID] = &copied
	return nil
}

func (s *stubOrderRepo) ListPlanningOrders(sentinelTermID string) ([]models.Order, error) {
	s.planningSentinel = sentinelTermID
	return s.planningOrders, nil
}

func (s *stubOrderRepo) ListPendingAccountsApproval(sentinelTermID string) ([]models.Order, error) {
	s.planningSentinel = sentinelTermID
	return s.planningOrders, nil
}

type stubLineItemRepo struct {
	repository.LineItemRepository
	orderRepo *stubOrderRepo
	items     map[string][]models.LineItem
	batches   int
}

func newStubLineItemRepo(orderRepo *stubOrderRepo) *stubLineItemRepo {
	return &stubLineItemRepo{orderRepo: orderRepo, items: make(map[string][]models.LineItem)}
}

func (s *stubLineItemRepo) CreateBatchForOrder(items []models.LineItem, order *models.Order) error {
	if err := s.orderRepo.UpdateWithVersion(order); err != nil {
		return err
	}
	s.items[order.ID] = append(s.items[order.ID], items...)
	s.batches++
	return nil
}

func (s *stubLineItemRepo) GetByOrderID(orderID string) ([]models.LineItem, error) {
	return s.items[orderID], nil
}

func (s *stubLineItemRepo) UpdateDeadlinesForOrder(items []models.LineItem, order *models.Order) error {
	existing := s.items[order.ID]
	for _, update := range items {
		found := false
		for i := range existing {
			if existing[i].ID == update.ID {
				existing[i].DeadLine = update.DeadLine
				found = true
			}
		}
		if !found {
			return gorm.ErrRecordNotFound
		}
	}
	return s.orderRepo.UpdateWithVersion(order)
}

type stubRelationRepo struct {
	repository.RelationRepository
	salesRels  map[string]*models.SalesExecOrderRelation
	storesRels map[string]*models.StoresExecOrderRelation
}

func newStubRelationRepo() *stubRelationRepo {
	return &stubRelationRepo{
		salesRels:  make(map[string]*models.SalesExecOrderRelation),
		storesRels: make(map[string]*models.StoresExecOrderRelation),
	}
}

func (s *stubRelationRepo) CreateSalesRelation(rel *models.SalesExecOrderRelation) error {
	s.salesRels[rel.OrderID] = rel
	return nil
}

func (s *stubRelationRepo) GetActiveSalesRelation(salesExecutiveID, orderID string) (*models.SalesExecOrderRelation, error) {
	rel, ok := s.salesRels[orderID]
	if !ok || !rel.IsActive || rel.SalesExecutiveID != salesExecutiveID {
		return nil, gorm.ErrRecordNotFound
	}
	return rel, nil
}

func (s *stubRelationRepo) GetActiveSalesRelationByOrder(orderID string) (*models.SalesExecOrderRelation, error) {
	rel, ok := s.salesRels[orderID]
	if !ok || !rel.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return rel, nil
}

func (s *stubRelationRepo) GetLatestSalesRelation(salesExecutiveID, orderID string) (*models.SalesExecOrderRelation, error) {
	rel, ok := s.salesRels[orderID]
	if !ok || rel.SalesExecutiveID != salesExecutiveID {
		return nil, gorm.ErrRecordNotFound
	}
	return rel, nil
}

func (s *stubRelationRepo) ListAllSalesRelations(salesExecutiveID string) ([]models.SalesExecOrderRelation, error) {
	var rels []models.SalesExecOrderRelation
	for _, rel := range s.salesRels {
		if rel.SalesExecutiveID == salesExecutiveID {
			rels = append(rels, *rel)
		}
	}
	return rels, nil
}

func (s *stubRelationRepo) UpdateSalesRelation(rel *models.SalesExecOrderRelation) error {
	s.salesRels[rel.OrderID] = rel
	return nil
}

func (s *stubRelationRepo) DeactivateSalesRelation(rel *models.SalesExecOrderRelation) error {
	rel.IsActive = false
	return nil
}

func (s *stubRelationRepo) CreateStoresRelation(rel *models.StoresExecOrderRelation) error {
	s.storesRels[rel.OrderID] = rel
	return nil
}

func (s *stubRelationRepo) GetActiveStoresRelation(storesExecutiveID, orderID string) (*models.StoresExecOrderRelation, error) {
	rel, ok := s.storesRels[orderID]
	if !ok || !rel.IsActive || rel.StoresExecutiveID != storesExecutiveID {
		return nil, gorm.ErrRecordNotFound
	}
	return rel, nil
}

func (s *stubRelationRepo) UpdateStoresRelation(rel *models.StoresExecOrderRelation) error {
	s.storesRels[rel.OrderID] = rel
	return nil
}

type stubProductRepo struct {
	repository.ProductRepository
	products map[string]*models.Product
}

func newStubProductRepo(products ...*models.Product) *stubProductRepo {
	repo := &stubProductRepo{products: make(map[string]*models.Product)}
	for _, product := range products {
		repo.products[product.ID] = product
	}
	return repo
}

func (s *stubProductRepo) GetByID(id string) (*models.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

type stubCartRepo struct {
	repository.CartRepository
	items  map[string]*models.Cart
	placed []models.Order
}

func newStubCartRepo(items ...*models.Cart) *stubCartRepo {
	repo := &stubCartRepo{items: make(map[string]*models.Cart)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (s *stubCartRepo) GetByCustomer(customerID string) ([]models.Cart, error) {
	var items []models.Cart
	for _, item := range s.items {
		if item.CustomerID == customerID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (s *stubCartRepo) PlaceOrders(orders []models.Order, cartIDs []string, customerID string) error {
	s.placed = append(s.placed, orders...)
	for _, id := range cartIDs {
		delete(s.items, id)
	}
	return nil
}

type stubScannedRepo struct {
	repository.ScannedProductRepository
	units      []*models.ScannedProduct
	claimStage workflow.Stage
	claimErr   error
}

func (s *stubScannedRepo) CreateUnit(unit *models.ScannedProduct) error {
	s.units = append(s.units, unit)
	return nil
}

func stageUnitID(unit *models.ScannedProduct, stage workflow.Stage) **string {
	switch stage {
	case workflow.StageStores:
		return &unit.StoresUnitUniqueID
	case workflow.StageWinding:
		return &unit.WindingUnitUniqueID
	case workflow.StageAssembly:
		return &unit.AssemblyUnitUniqueID
	case workflow.StageTesting:
		return &unit.TestingUnitUniqueID
	case workflow.StagePacking:
		return &unit.PackingUnitUniqueID
	default:
		return &unit.QCUnitUniqueID
	}
}

func (s *stubScannedRepo) ClaimOldestUnclaimed(productID, unitUniqueID string, stage workflow.Stage) (*models.ScannedProduct, error) {
	if s.claimErr != nil {
		return nil, s.claimErr
	}
	s.claimStage = stage

	var oldest *models.ScannedProduct
	for _, unit := range s.units {
		if unit.ProductID != productID || *stageUnitID(unit, stage) != nil {
			continue
		}
		if oldest == nil || unit.CreatedAt.Before(oldest.CreatedAt) {
			oldest = unit
		}
	}
	if oldest == nil {
		return nil, apierror.New("invalid product id or products scanned completed", apierror.CodeScanCompleted)
	}
	stamp := unitUniqueID
	*stageUnitID(oldest, stage) = &stamp
	return oldest, nil
}

func (s *stubScannedRepo) CountByStage(productID string, stage workflow.Stage) (int64, error) {
	var count int64
	for _, unit := range s.units {
		if unit.ProductID == productID && *stageUnitID(unit, stage) != nil {
			count++
		}
	}
	return count, nil
}

type stubDistributorRepo struct {
	repository.DistributorRepository
	distributors map[string]*models.Distributor
}

func newStubDistributorRepo(distributors ...*models.Distributor) *stubDistributorRepo {
	repo := &stubDistributorRepo{distributors: make(map[string]*models.Distributor)}
	for _, distributor := range distributors {
		repo.distributors[distributor.ID] = distributor
	}
	return repo
}

func (s *stubDistributorRepo) GetByID(id string) (*models.Distributor, error) {
	distributor, ok := s.distributors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return distributor, nil
}

type stubPaymentTermRepo struct {
	repository.PaymentTermRepository
	sentinel *models.PaymentTerm
}

func (s *stubPaymentTermRepo) GetByLabel(label string) (*models.PaymentTerm, error) {
	if s.sentinel == nil || s.sentinel.Label != label {
		return nil, gorm.ErrRecordNotFound
	}
	return s.sentinel, nil
}
