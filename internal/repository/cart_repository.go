package repository

import (
	"order_manager/internal/models"

	"gorm.io/gorm"
)

type CartRepository interface {
	Create(item *models.Cart) error
	GetByCustomer(customerID string) ([]models.Cart, error)
	// PlaceOrders creates the orders and clears the matching cart rows in
	// one transaction.
	PlaceOrders(orders []models.Order, cartIDs []string, customerID string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(item *models.Cart) error {
	return r.db.Create(item).Error
}

func (r *cartRepository) GetByCustomer(customerID string) ([]models.Cart, error) {
	var items []models.Cart
	err := r.db.Where("customer_id = ?", customerID).
		Preload("Product").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *cartRepository) PlaceOrders(orders []models.Order, cartIDs []string, customerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(orders) > 0 {
			if err := tx.Create(&orders).Error; err != nil {
				return err
			}
		}
		if len(cartIDs) > 0 {
			if err := tx.Where("id IN ? AND customer_id = ?", cartIDs, customerID).
				Delete(&models.Cart{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
