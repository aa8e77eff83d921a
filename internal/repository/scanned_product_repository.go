package repository

import (
	"errors"

	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/workflow"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScannedProductRepository interface {
	// CreateUnit records a fresh unit entering the pipeline at the stores
	// stage.
	CreateUnit(unit *models.ScannedProduct) error
	// ClaimOldestUnclaimed locks and stamps the oldest unit that has not
	// passed the given stage yet. Concurrent scanners skip each other's
	// locked rows, so two requests never claim the same unit.
	ClaimOldestUnclaimed(productID, unitUniqueID string, stage workflow.Stage) (*models.ScannedProduct, error)
	CountByStage(productID string, stage workflow.Stage) (int64, error)
	// GetByUnitID resolves a unit by the id stamped on it when it entered
	// the pipeline at stores.
	GetByUnitID(unitUniqueID string) (*models.ScannedProduct, error)
}

type scannedProductRepository struct {
	db *gorm.DB
}

func NewScannedProductRepository(db *gorm.DB) ScannedProductRepository {
	return &scannedProductRepository{db: db}
}

func (r *scannedProductRepository) CreateUnit(unit *models.ScannedProduct) error {
	return r.db.Create(unit).Error
}

func (r *scannedProductRepository) ClaimOldestUnclaimed(productID, unitUniqueID string, stage workflow.Stage) (*models.ScannedProduct, error) {
	var unit models.ScannedProduct
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("product_id = ? AND "+stage.Column()+" IS NULL", productID).
			Order("created_at ASC").
			First(&unit).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.New("invalid product id or products scanned completed", apierror.CodeScanCompleted)
		}
		if err != nil {
			return err
		}
		return tx.Model(&unit).Update(stage.Column(), unitUniqueID).Error
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *scannedProductRepository) CountByStage(productID string, stage workflow.Stage) (int64, error) {
	var count int64
	err := r.db.Model(&models.ScannedProduct{}).
		Where("product_id = ? AND "+stage.Column()+" IS NOT NULL", productID).
		Count(&count).Error
	return count, err
}

func (r *scannedProductRepository) GetByUnitID(unitUniqueID string) (*models.ScannedProduct, error) {
	var unit models.ScannedProduct
	err := r.db.Where("stores_unit_unique_id = ?", unitUniqueID).First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}
