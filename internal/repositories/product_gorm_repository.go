package repositories

import (
	"errors"
	"fmt"

	"ecsite/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// ListPage retrieves a page of products, newest id first.
func (r *GORMProductRepository) ListPage(limit, offset int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id DESC").Limit(limit).Offset(offset).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product. Returns ErrNotFound when absent.
func (r *GORMProductRepository) GetByID(id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by id %d: %w", id, err)
	}
	return &product, nil
}

// DeleteWithIDAbove removes every product whose id exceeds the threshold.
func (r *GORMProductRepository) DeleteWithIDAbove(id int64) error {
	if err := r.db.Where("id > ?", id).Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("failed to delete products above id %d: %w", id, err)
	}
	return nil
}
