package repository

import (
	"order_manager/internal/models"

	"gorm.io/gorm"
)

type DistributorRepository interface {
	// CreateWithUser inserts the login user and the distributor profile as
	// one atomic unit.
	CreateWithUser(user *models.User, distributor *models.Distributor) error
	GetByID(id string) (*models.Distributor, error)
	GetByUserID(userID string) (*models.Distributor, error)
	Update(distributor *models.Distributor) error
}

type distributorRepository struct {
	db *gorm.DB
}

func NewDistributorRepository(db *gorm.DB) DistributorRepository {
	return &distributorRepository{db: db}
}

func (r *distributorRepository) CreateWithUser(user *models.User, distributor *models.Distributor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		distributor.UserID = user.ID
		return tx.Create(distributor).Error
	})
}

func (r *distributorRepository) GetByID(id string) (*models.Distributor, error) {
	var distributor models.Distributor
	err := r.db.Where("id = ?", id).First(&distributor).Error
	if err != nil {
		return nil, err
	}
	return &distributor, nil
}

func (r *distributorRepository) GetByUserID(userID string) (*models.Distributor, error) {
	var distributor models.Distributor
	err := r.db.Where("user_id = ?", userID).First(&distributor).Error
	if err != nil {
		return nil, err
	}
	return &distributor, nil
}

func (r *distributorRepository) Update(distributor *models.Distributor) error {
	return r.db.Save(distributor).Error
}
