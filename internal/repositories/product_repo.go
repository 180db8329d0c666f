package repositories

import "ecsite/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// ListPage returns up to limit products ordered by id descending,
	// skipping offset rows.
	ListPage(limit, offset int) ([]models.Product, error)
	GetByID(id int64) (*models.Product, error)
	DeleteWithIDAbove(id int64) error
}
