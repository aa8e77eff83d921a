package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserName    string    `json:"user_name" gorm:"not null"`
	Email       string    `json:"email" gorm:"unique;not null"`
	PhoneNumber string    `json:"phone_number" gorm:"unique;not null"`
	Password    string    `json:"-" gorm:"not null"`
	UserRoleID  string    `json:"user_role_id" gorm:"type:uuid;not null"`
	UserRole    *UserRole `json:"user_role,omitempty" gorm:"foreignKey:UserRoleID"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type UserRole struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserRole  string    `json:"user_role" gorm:"unique;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *UserRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Role names resolved into JWT claims at login.
const (
	RoleSystemAdmin       = "SYSTEM ADMIN"
	RoleDistributor       = "DISTRIBUTOR"
	RoleManager           = "MANAGER"
	RoleSalesExecutive    = "SALES EXECUTIVE"
	RoleStoresExecutive   = "STORES EXECUTIVE"
	RoleWindingExecutive  = "WINDING EXECUTIVE"
	RoleAssemblyExecutive = "ASSEMBLY EXECUTIVE"
	RoleTestingExecutive  = "TESTING EXECUTIVE"
	RolePackingExecutive  = "PACKING EXECUTIVE"
	RoleQCExecutive       = "QC EXECUTIVE"
	RolePlanning          = "PLANNING"
	RoleAccounts          = "ACCOUNTS"
)
