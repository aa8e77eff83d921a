package repository

import (
	"order_manager/internal/models"

	"gorm.io/gorm"
)

type PaymentTermRepository interface {
	Create(term *models.PaymentTerm) error
	GetByID(id string) (*models.PaymentTerm, error)
	GetByLabel(label string) (*models.PaymentTerm, error)
	GetAll() ([]models.PaymentTerm, error)
}

type paymentTermRepository struct {
	db *gorm.DB
}

func NewPaymentTermRepository(db *gorm.DB) PaymentTermRepository {
	return &paymentTermRepository{db: db}
}

func (r *paymentTermRepository) Create(term *models.PaymentTerm) error {
	return r.db.Create(term).Error
}

func (r *paymentTermRepository) GetByID(id string) (*models.PaymentTerm, error) {
	var term models.PaymentTerm
	err := r.db.Where("id = ?", id).First(&term).Error
	if err != nil {
		return nil, err
	}
	return &term, nil
}

func (r *paymentTermRepository) GetByLabel(label string) (*models.PaymentTerm, error) {
	var term models.PaymentTerm
	err := r.db.Where("advance_amt = ?", label).First(&term).Error
	if err != nil {
		return nil, err
	}
	return &term, nil
}

func (r *paymentTermRepository) GetAll() ([]models.PaymentTerm, error) {
	var terms []models.PaymentTerm
	err := r.db.Find(&terms).Error
	return terms, err
}
