package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentTerm rows name payment arrangements. The row whose label equals the
// configured advance-amount label acts as the sentinel meaning "no advance
// required" when filtering orders for accounts and planning.
type PaymentTerm struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Label     string    `json:"label" gorm:"column:advance_amt;unique;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PaymentTerm) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
