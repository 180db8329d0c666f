package repositories

import "ecsite/internal/models"

// HistoryRepository defines the interface for purchase-record data access.
type HistoryRepository interface {
	Create(history *models.History) error
	// ListByUser returns the user's purchases, newest first, with the bought
	// product attached when it still exists.
	ListByUser(userID int64) ([]models.History, error)
	CountByProductAndUser(productID, userID int64) (int64, error)
	DeleteWithIDAbove(id int64) error
}
