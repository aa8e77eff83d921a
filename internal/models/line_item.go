package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LineItem struct {
	ID             string          `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID        string          `json:"order_id" gorm:"type:uuid;not null;index"`
	UOM            string          `json:"uom"`
	MotorType      string          `json:"motor_type"`
	HeadSize       string          `json:"head_size"`
	Current        string          `json:"current"`
	Diameter       string          `json:"diameter"`
	PannelType     string          `json:"pannel_type"`
	SPD            bool            `json:"spd"`
	Data           bool            `json:"data"`
	Warranty       bool            `json:"warranty"`
	Transportation bool            `json:"transportation"`
	Price          decimal.Decimal `json:"price" gorm:"type:numeric(14,2)"`
	Quantity       int             `json:"quantity"`
	DeadLine       *time.Time      `json:"dead_line"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (l *LineItem) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
