package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Executive struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null"`
	User       *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ManagerID  string    `json:"manager_id" gorm:"type:uuid"`
	UserName   string    `json:"user_name"`
	EmployeeID string    `json:"employee_id"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (e *Executive) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type Manager struct {
	ID            string      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        string      `json:"user_id" gorm:"type:uuid;not null"`
	User          *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	UserName      string      `json:"user_name"`
	EmployeeID    string      `json:"employee_id"`
	WorkLocations StringArray `json:"work_locations" gorm:"type:text"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (m *Manager) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
