package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScannedProduct is one physical unit being manufactured for a product.
// Stores creates the row; each later stage claims it by filling in its own
// unit-id column. A stage is done for the unit once its column is non-null.
type ScannedProduct struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID   string `json:"product_id" gorm:"type:uuid;not null;index"`
	ProductName string `json:"product_name"`
	HeadSize    string `json:"head_size"`
	MotorHP     string `json:"motor_hp"`
	Current     string `json:"current"`

	StoresUnitUniqueID   *string `json:"stores_unit_unique_id"`
	WindingUnitUniqueID  *string `json:"winding_unit_unique_id"`
	AssemblyUnitUniqueID *string `json:"assembly_unit_unique_id"`
	TestingUnitUniqueID  *string `json:"testing_unit_unique_id"`
	PackingUnitUniqueID  *string `json:"packing_unit_unique_id"`
	QCUnitUniqueID       *string `json:"qc_unit_unique_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ScannedProduct) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
