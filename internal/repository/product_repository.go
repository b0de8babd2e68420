package repository

import (
	"context"

	"farmlink/internal/models"

	"gorm.io/gorm"
)

const featuredProductCount = 5

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	// Featured returns the most recent products with their owner loaded.
	Featured(ctx context.Context) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Featured(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(featuredProductCount).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
