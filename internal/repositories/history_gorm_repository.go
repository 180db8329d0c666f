package repositories

import (
	"fmt"

	"ecsite/internal/models"

	"gorm.io/gorm"
)

// GORMHistoryRepository is a GORM implementation of HistoryRepository.
type GORMHistoryRepository struct {
	db *gorm.DB
}

// NewGORMHistoryRepository creates a new instance of GORMHistoryRepository.
func NewGORMHistoryRepository(db *gorm.DB) *GORMHistoryRepository {
	return &GORMHistoryRepository{db: db}
}

// Create inserts a purchase record.
func (r *GORMHistoryRepository) Create(history *models.History) error {
	if err := r.db.Create(history).Error; err != nil {
		return fmt.Errorf("failed to create history: %w", err)
	}
	return nil
}

// ListByUser returns all purchases of a user ordered by history id
// descending. The product association is nil when the row is gone.
func (r *GORMHistoryRepository) ListByUser(userID int64) ([]models.History, error) {
	var histories []models.History
	if err := r.db.Preload("Product").Where("user_id = ?", userID).
		Order("id DESC").Find(&histories).Error; err != nil {
		return nil, fmt.Errorf("failed to list histories for user %d: %w", userID, err)
	}
	return histories, nil
}

// CountByProductAndUser counts purchases of a product by a user.
func (r *GORMHistoryRepository) CountByProductAndUser(productID, userID int64) (int64, error) {
	var count int64
	if err := r.db.Model(&models.History{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count histories for product %d user %d: %w",
			productID, userID, err)
	}
	return count, nil
}

// DeleteWithIDAbove removes every history whose id exceeds the threshold.
func (r *GORMHistoryRepository) DeleteWithIDAbove(id int64) error {
	if err := r.db.Where("id > ?", id).Delete(&models.History{}).Error; err != nil {
		return fmt.Errorf("failed to delete histories above id %d: %w", id, err)
	}
	return nil
}
