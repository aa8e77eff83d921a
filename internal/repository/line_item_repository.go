package repository

import (
	"order_manager/internal/models"

	"gorm.io/gorm"
)

type LineItemRepository interface {
	// CreateBatchForOrder bulk-inserts the items and rewrites the parent
	// order in one transaction. Either everything lands or nothing does.
	CreateBatchForOrder(items []models.LineItem, order *models.Order) error
	GetByOrderID(orderID string) ([]models.LineItem, error)
	// UpdateDeadlinesForOrder writes each item's deadline and the parent
	// order's derived deadline in one transaction.
	UpdateDeadlinesForOrder(items []models.LineItem, order *models.Order) error
}

type lineItemRepository struct {
	db *gorm.DB
}

func NewLineItemRepository(db *gorm.DB) LineItemRepository {
	return &lineItemRepository{db: db}
}

func (r *lineItemRepository) CreateBatchForOrder(items []models.LineItem, order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return updateOrderWithVersion(tx, order)
	})
}

func (r *lineItemRepository) GetByOrderID(orderID string) ([]models.LineItem, error) {
	var items []models.LineItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *lineItemRepository) UpdateDeadlinesForOrder(items []models.LineItem, order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range items {
			res := tx.Model(&models.LineItem{}).
				Where("id = ? AND order_id = ?", items[i].ID, order.ID).
				Update("dead_line", items[i].DeadLine)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return updateOrderWithVersion(tx, order)
	})
}
