package repository

import (
	"order_manager/internal/apierror"
	"order_manager/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByIDWithLineItems(id string) (*models.Order, error)
	ListByCustomer(customerID string) ([]models.Order, error)
	// UpdateWithVersion writes the full order row guarded by its version
	// column and bumps the version. Returns a conflict error when another
	// writer got there first.
	UpdateWithVersion(order *models.Order) error
	ListPendingAccountsApproval(sentinelTermID string) ([]models.Order, error)
	ListPlanningOrders(sentinelTermID string) ([]models.Order, error)
	ListByDistributorStates(states []string) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// updateOrderWithVersion is shared by every repository method that rewrites
// an order row. Zero rows affected means a concurrent writer bumped the
// version between our read and this write.
func updateOrderWithVersion(tx *gorm.DB, order *models.Order) error {
	prev := order.Version
	order.Version = prev + 1
	res := tx.Model(order).
		Where("version = ?", prev).
		Select("*").
		Omit("id", "created_at").
		Updates(order)
	if res.Error != nil {
		order.Version = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		order.Version = prev
		return apierror.New("order was modified concurrently, please retry", apierror.CodeConflict)
	}
	return nil
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("id = ?", id).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByIDWithLineItems(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("id = ?", id).Preload("LineItems").Preload("Product").First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByCustomer(customerID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("customer_id = ? AND is_active = ?", customerID, true).
		Preload("Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateWithVersion(order *models.Order) error {
	return updateOrderWithVersion(r.db, order)
}

// ListPendingAccountsApproval returns orders whose payment terms require an
// advance and that accounts has not approved yet. The sentinel payment-terms
// id marks "no advance required" orders, which never need accounts attention.
func (r *orderRepository) ListPendingAccountsApproval(sentinelTermID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("approved_by_accounts = ? AND payment_terms IS NOT NULL AND payment_terms <> ?", false, sentinelTermID).
		Find(&orders).Error
	return orders, err
}

// ListPlanningOrders returns orders ready for planning: either no advance was
// required, or accounts has signed off on the advance payment.
func (r *orderRepository) ListPlanningOrders(sentinelTermID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where(
		"payment_terms = ? OR (approved_by_accounts = ? AND payment_terms <> ?)",
		sentinelTermID, true, sentinelTermID,
	).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListByDistributorStates(states []string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Joins("JOIN distributors ON distributors.id = orders.customer_id").
		Where("distributors.state IN ?", states).
		Preload("Customer").
		Preload("Product").
		Find(&orders).Error
	return orders, err
}
