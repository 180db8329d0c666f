package repositories

import (
	"fmt"

	"ecsite/internal/models"

	"gorm.io/gorm"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{db: db}
}

// Create inserts a comment. Content goes in exactly as supplied.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// RecentByProduct returns the newest comments for a product with commenter
// identity preloaded.
func (r *GORMCommentRepository) RecentByProduct(productID int64, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Preload("User").Where("product_id = ?", productID).
		Order("created_at DESC").Limit(limit).Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent comments for product %d: %w",
			productID, err)
	}
	return comments, nil
}

// ListByProduct returns every comment for a product, newest first.
func (r *GORMCommentRepository) ListByProduct(productID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Preload("User").Where("product_id = ?", productID).
		Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments for product %d: %w",
			productID, err)
	}
	return comments, nil
}

// CountByProduct counts all comments for a product.
func (r *GORMCommentRepository) CountByProduct(productID int64) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count comments for product %d: %w",
			productID, err)
	}
	return count, nil
}

// DeleteWithIDAbove removes every comment whose id exceeds the threshold.
func (r *GORMCommentRepository) DeleteWithIDAbove(id int64) error {
	if err := r.db.Where("id > ?", id).Delete(&models.Comment{}).Error; err != nil {
		return fmt.Errorf("failed to delete comments above id %d: %w", id, err)
	}
	return nil
}
