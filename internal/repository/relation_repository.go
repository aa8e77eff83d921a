package repository

import (
	"order_manager/internal/models"

	"gorm.io/gorm"
)

type RelationRepository interface {
	CreateSalesRelation(rel *models.SalesExecOrderRelation) error
	GetActiveSalesRelation(salesExecutiveID, orderID string) (*models.SalesExecOrderRelation, error)
	GetActiveSalesRelationByOrder(orderID string) (*models.SalesExecOrderRelation, error)
	// GetLatestSalesRelation returns the executive's most recent claim on
	// the order, active or retired.
	GetLatestSalesRelation(salesExecutiveID, orderID string) (*models.SalesExecOrderRelation, error)
	ListSalesRelations(salesExecutiveID string, underProcess bool) ([]models.SalesExecOrderRelation, error)
	ListAllSalesRelations(salesExecutiveID string) ([]models.SalesExecOrderRelation, error)
	UpdateSalesRelation(rel *models.SalesExecOrderRelation) error
	DeactivateSalesRelation(rel *models.SalesExecOrderRelation) error

	CreateStoresRelation(rel *models.StoresExecOrderRelation) error
	GetActiveStoresRelation(storesExecutiveID, orderID string) (*models.StoresExecOrderRelation, error)
	ListStoresRelations(storesExecutiveID string) ([]models.StoresExecOrderRelation, error)
	UpdateStoresRelation(rel *models.StoresExecOrderRelation) error
}

type relationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

func (r *relationRepository) CreateSalesRelation(rel *models.SalesExecOrderRelation) error {
	return r.db.Create(rel).Error
}

func (r *relationRepository) GetActiveSalesRelation(salesExecutiveID, orderID string) (*models.SalesExecOrderRelation, error) {
	var rel models.SalesExecOrderRelation
	err := r.db.Where("sales_executive_id = ? AND order_id = ? AND is_active = ?", salesExecutiveID, orderID, true).
		First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *relationRepository) GetActiveSalesRelationByOrder(orderID string) (*models.SalesExecOrderRelation, error) {
	var rel models.SalesExecOrderRelation
	err := r.db.Where("order_id = ? AND is_active = ?", orderID, true).First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *relationRepository) GetLatestSalesRelation(salesExecutiveID, orderID string) (*models.SalesExecOrderRelation, error) {
	var rel models.SalesExecOrderRelation
	err := r.db.Where("sales_executive_id = ? AND order_id = ?", salesExecutiveID, orderID).
		Order("created_at DESC").
		First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *relationRepository) ListAllSalesRelations(salesExecutiveID string) ([]models.SalesExecOrderRelation, error) {
	var rels []models.SalesExecOrderRelation
	err := r.db.Where("sales_executive_id = ?", salesExecutiveID).
		Preload("Order").
		Preload("Order.Product").
		Preload("Order.Customer").
		Order("created_at DESC").
		Find(&rels).Error
	return rels, err
}

func (r *relationRepository) ListSalesRelations(salesExecutiveID string, underProcess bool) ([]models.SalesExecOrderRelation, error) {
	var rels []models.SalesExecOrderRelation
	err := r.db.Where("sales_executive_id = ? AND is_active = ? AND is_under_process = ?", salesExecutiveID, true, underProcess).
		Preload("Order").
		Preload("Order.Product").
		Preload("Order.Customer").
		Order("created_at DESC").
		Find(&rels).Error
	return rels, err
}

func (r *relationRepository) UpdateSalesRelation(rel *models.SalesExecOrderRelation) error {
	return r.db.Save(rel).Error
}

// DeactivateSalesRelation retires the relation once negotiation reaches a
// terminal state. Save would skip a false IsActive, so update the column
// explicitly.
func (r *relationRepository) DeactivateSalesRelation(rel *models.SalesExecOrderRelation) error {
	rel.IsActive = false
	return r.db.Model(rel).Update("is_active", false).Error
}

func (r *relationRepository) CreateStoresRelation(rel *models.StoresExecOrderRelation) error {
	return r.db.Create(rel).Error
}

func (r *relationRepository) GetActiveStoresRelation(storesExecutiveID, orderID string) (*models.StoresExecOrderRelation, error) {
	var rel models.StoresExecOrderRelation
	err := r.db.Where("stores_executive_id = ? AND order_id = ? AND is_active = ?", storesExecutiveID, orderID, true).
		First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *relationRepository) ListStoresRelations(storesExecutiveID string) ([]models.StoresExecOrderRelation, error) {
	var rels []models.StoresExecOrderRelation
	err := r.db.Where("stores_executive_id = ? AND is_active = ?", storesExecutiveID, true).
		Preload("Order").
		Preload("Order.Product").
		Order("created_at DESC").
		Find(&rels).Error
	return rels, err
}

func (r *relationRepository) UpdateStoresRelation(rel *models.StoresExecOrderRelation) error {
	return r.db.Save(rel).Error
}
