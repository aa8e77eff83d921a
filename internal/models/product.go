package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID                   string          `json:"id" gorm:"type:uuid;primaryKey"`
	ProductName          string          `json:"product_name" gorm:"not null"`
	Details              string          `json:"details" gorm:"type:text"`
	Price                decimal.Decimal `json:"price" gorm:"type:numeric(14,2);not null"`
	GST                  decimal.Decimal `json:"gst" gorm:"type:numeric(6,2)"`
	Discount             decimal.Decimal `json:"discount" gorm:"type:numeric(6,2)"`
	ProductCategoryID    string          `json:"product_category_id" gorm:"type:uuid"`
	ProductSubCategoryID string          `json:"product_sub_category_id" gorm:"type:uuid"`
	ProductImage         string          `json:"product_image"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type ProductCategory struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryName string    `json:"category_name" gorm:"unique;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *ProductCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type ProductSubCategory struct {
	ID                string    `json:"id" gorm:"type:uuid;primaryKey"`
	SubCategoryName   string    `json:"sub_category_name" gorm:"not null"`
	ProductCategoryID string    `json:"product_category_id" gorm:"type:uuid;not null"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (c *ProductSubCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type ProductImage struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID    string    `json:"product_id" gorm:"type:uuid;not null"`
	ProductImage string    `json:"product_image" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
