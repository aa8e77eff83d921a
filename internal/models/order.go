package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is one customer order line. Department sign-offs are independent
// boolean gates; order_status and product_status are append-only histories.
// Version backs the optimistic-lock check on every update-then-save path.
type Order struct {
	ID         string       `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID string       `json:"customer_id" gorm:"type:uuid;not null"`
	Customer   *Distributor `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProductID  string       `json:"product_id" gorm:"type:uuid;not null"`
	Product    *Product     `json:"product,omitempty" gorm:"foreignKey:ProductID"`

	Quantity        int             `json:"quantity" gorm:"default:0"`
	Price           decimal.Decimal `json:"price" gorm:"type:numeric(14,2)"`
	Discount        decimal.Decimal `json:"discount" gorm:"type:numeric(6,2)"`
	ShippingAddress string          `json:"shipping_address"`
	BillingAddress  string          `json:"billing_address"`
	Reason          string          `json:"reason"`
	Remarks         string          `json:"remarks"`

	PaymentTermsID     string     `json:"payment_terms" gorm:"column:payment_terms;type:uuid"`
	SapReferenceNumber string     `json:"sap_reference_number"`
	AdvanceAmount      bool       `json:"advance_amount"`
	DeadLine           *time.Time `json:"dead_line"`

	ApprovedBySales    bool `json:"approved_by_sales" gorm:"default:false"`
	ApprovedByAccounts bool `json:"approved_by_accounts" gorm:"default:false"`
	ApprovedByPlanning bool `json:"approved_by_planning" gorm:"default:false"`
	ApprovedByCustomer bool `json:"approved_by_customer" gorm:"default:false"`
	ApprovedByStores   bool `json:"approved_by_stores" gorm:"default:false"`

	OrderStatus            StringArray `json:"order_status" gorm:"type:text"`
	ProductStatus          StringArray `json:"product_status" gorm:"type:text"`
	SalesNegotiationStatus string      `json:"sales_negotiation_status"`
	StoresStatus           string      `json:"stores_status"`

	// Product spec fields frozen onto the order during negotiation.
	HeadSize       int    `json:"head_size"`
	MotorType      string `json:"motor_type"`
	Current        string `json:"current"`
	Diameter       string `json:"diameter"`
	PannelType     string `json:"pannel_type"`
	SPD            string `json:"spd"`
	Data           string `json:"data"`
	Warranty       string `json:"warranty"`
	Transportation string `json:"transportation"`

	IsActive  bool      `json:"is_active" gorm:"default:true"`
	Version   int       `json:"version" gorm:"default:1;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	LineItems []LineItem `json:"line_items,omitempty" gorm:"foreignKey:OrderID"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
