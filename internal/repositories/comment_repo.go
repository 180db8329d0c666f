package repositories

import "ecsite/internal/models"

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	// RecentByProduct returns up to limit comments for a product, newest
	// first, with the commenter attached.
	RecentByProduct(productID int64, limit int) ([]models.Comment, error)
	// ListByProduct returns every comment for a product, newest first.
	ListByProduct(productID int64) ([]models.Comment, error)
	CountByProduct(productID int64) (int64, error)
	DeleteWithIDAbove(id int64) error
}
