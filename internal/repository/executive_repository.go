package repository

import (
	"order_manager/internal/models"

	"gorm.io/gorm"
)

type ExecutiveRepository interface {
	CreateWithUser(user *models.User, executive *models.Executive) error
	GetByID(id string) (*models.Executive, error)
	GetByUserID(userID string) (*models.Executive, error)
	CreateManagerWithUser(user *models.User, manager *models.Manager) error
	GetManagerByID(id string) (*models.Manager, error)
	GetManagerByUserID(userID string) (*models.Manager, error)
	ListByManager(managerID string) ([]models.Executive, error)
}

type executiveRepository struct {
	db *gorm.DB
}

func NewExecutiveRepository(db *gorm.DB) ExecutiveRepository {
	return &executiveRepository{db: db}
}

func (r *executiveRepository) CreateWithUser(user *models.User, executive *models.Executive) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		executive.UserID = user.ID
		executive.UserName = user.UserName
		return tx.Create(executive).Error
	})
}

func (r *executiveRepository) GetByID(id string) (*models.Executive, error) {
	var executive models.Executive
	err := r.db.Where("id = ?", id).First(&executive).Error
	if err != nil {
		return nil, err
	}
	return &executive, nil
}

func (r *executiveRepository) GetByUserID(userID string) (*models.Executive, error) {
	var executive models.Executive
	err := r.db.Where("user_id = ?", userID).First(&executive).Error
	if err != nil {
		return nil, err
	}
	return &executive, nil
}

func (r *executiveRepository) CreateManagerWithUser(user *models.User, manager *models.Manager) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		manager.UserID = user.ID
		manager.UserName = user.UserName
		return tx.Create(manager).Error
	})
}

func (r *executiveRepository) GetManagerByID(id string) (*models.Manager, error) {
	var manager models.Manager
	err := r.db.Where("id = ?", id).First(&manager).Error
	if err != nil {
		return nil, err
	}
	return &manager, nil
}

func (r *executiveRepository) GetManagerByUserID(userID string) (*models.Manager, error) {
	var manager models.Manager
	err := r.db.Where("user_id = ?", userID).First(&manager).Error
	if err != nil {
		return nil, err
	}
	return &manager, nil
}

func (r *executiveRepository) ListByManager(managerID string) ([]models.Executive, error) {
	var executives []models.Executive
	err := r.db.Where("manager_id = ?", managerID).Find(&executives).Error
	return executives, err
}
