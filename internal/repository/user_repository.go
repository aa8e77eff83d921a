package repository

import (
	"order_manager/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmailOrPhone(email, phoneNumber string) (*models.User, error)
	GetRoleByID(id string) (*models.UserRole, error)
	GetRoleByName(name string) (*models.UserRole, error)
	CreateRole(role *models.UserRole) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmailOrPhone(email, phoneNumber string) (*models.User, error) {
	query := r.db.Model(&models.User{})
	switch {
	case email != "" && phoneNumber != "":
		query = query.Where("email = ? OR phone_number = ?", email, phoneNumber)
	case email != "":
		query = query.Where("email = ?", email)
	default:
		query = query.Where("phone_number = ?", phoneNumber)
	}

	var user models.User
	err := query.First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetRoleByID(id string) (*models.UserRole, error) {
	var role models.UserRole
	err := r.db.Where("id = ?", id).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *userRepository) GetRoleByName(name string) (*models.UserRole, error) {
	var role models.UserRole
	err := r.db.Where("user_role = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *userRepository) CreateRole(role *models.UserRole) error {
	return r.db.Create(role).Error
}
