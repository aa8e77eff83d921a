package repository

import (
	"order_manager/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	GetAll() ([]models.Product, error)
	CreateCategory(category *models.ProductCategory) error
	CreateSubCategory(subCategory *models.ProductSubCategory) error
	AddImage(image *models.ProductImage) error
	GetImages(productID string) ([]models.ProductImage, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Find(&products).Error
	return products, err
}

func (r *productRepository) CreateCategory(category *models.ProductCategory) error {
	return r.db.Create(category).Error
}

func (r *productRepository) CreateSubCategory(subCategory *models.ProductSubCategory) error {
	return r.db.Create(subCategory).Error
}

func (r *productRepository) AddImage(image *models.ProductImage) error {
	return r.db.Create(image).Error
}

func (r *productRepository) GetImages(productID string) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.Where("product_id = ?", productID).Find(&images).Error
	return images, err
}
