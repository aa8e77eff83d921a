package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Distributor struct {
	ID                string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID            string    `json:"user_id" gorm:"type:uuid;not null"`
	User              *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	FullName          string    `json:"full_name" gorm:"not null"`
	CompanyName       string    `json:"company_name"`
	GSTNumber         string    `json:"gst_number"`
	PanNumber         string    `json:"pan_number"`
	AadharNumber      string    `json:"aadhar_number"`
	PriorExperience   string    `json:"prior_experience"`
	ShippingAddress   string    `json:"shipping_address"`
	BillingAddress    string    `json:"billing_address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Pincode           string    `json:"pincode"`
	AdditionalRemarks string    `json:"additional_remarks"`
	Attachments       string    `json:"attachments"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (d *Distributor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
