package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesExecOrderRelation assigns one sales executive to one order. Multiple
// rows may exist over an order's life (reassignment); only one should be
// active at a time.
type SalesExecOrderRelation struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey"`
	SalesExecutiveID string    `json:"sales_executive_id" gorm:"type:uuid;not null;index"`
	OrderID          string    `json:"order_id" gorm:"type:uuid;not null;index"`
	Order            *Order    `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	IsActive         bool      `json:"is_active" gorm:"default:true"`
	IsUnderProcess   bool      `json:"is_under_process" gorm:"default:false"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (r *SalesExecOrderRelation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type StoresExecOrderRelation struct {
	ID                string    `json:"id" gorm:"type:uuid;primaryKey"`
	StoresExecutiveID string    `json:"stores_executive_id" gorm:"type:uuid;not null;index"`
	OrderID           string    `json:"order_id" gorm:"type:uuid;not null;index"`
	Order             *Order    `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	IsActive          bool      `json:"is_active" gorm:"default:true"`
	IsUnderProcess    bool      `json:"is_under_process" gorm:"default:false"`
	TotalScanned      int       `json:"total_scanned" gorm:"default:0"`
	UnitUniqueID      string    `json:"unit_unique_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (r *StoresExecOrderRelation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
