package services

import (
	"log"
	"time"

	"ecsite/internal/models"
	"ecsite/internal/repositories"
	"ecsite/pkg/rabbitmq"
)

// PurchasedItem is one row of a user's purchase history, shaped for the
// mypage view.
type PurchasedItem struct {
	models.History
	DisplayBoughtAt time.Time
}

// PurchaseService records purchases and reports purchase history.
type PurchaseService struct {
	historyRepo repositories.HistoryRepository
	mqClient    *rabbitmq.Client // nil when no broker is configured
}

// NewPurchaseService creates a new PurchaseService. mqClient may be nil.
func NewPurchaseService(historyRepo repositories.HistoryRepository, mqClient *rabbitmq.Client) *PurchaseService {
	return &PurchaseService{
		historyRepo: historyRepo,
		mqClient:    mqClient,
	}
}

// Buy inserts exactly one history row for the purchase and, when a broker is
// connected, publishes a purchase event. Publish failures are logged, never
// surfaced: the purchase itself already succeeded.
func (s *PurchaseService) Buy(productID, userID int64) error {
	history := &models.History{
		ProductID: productID,
		UserID:    userID,
		CreatedAt: models.StorageNow(),
	}
	if err := s.historyRepo.Create(history); err != nil {
		return err
	}

	if s.mqClient != nil {
		event := rabbitmq.PurchaseEvent{
			HistoryID: history.ID,
			ProductID: productID,
			UserID:    userID,
			BoughtAt:  history.CreatedAt,
		}
		if err := s.mqClient.PublishPurchase(event); err != nil {
			log.Printf("Warning: failed to publish purchase event for history %d: %v",
				history.ID, err)
		}
	}
	return nil
}

// HistoryOf returns the user's purchases, newest first, together with the
// total spend across all of them. A purchase whose product row is gone still
// appears but contributes nothing to the total.
func (s *PurchaseService) HistoryOf(userID int64) ([]PurchasedItem, int, error) {
	histories, err := s.historyRepo.ListByUser(userID)
	if err != nil {
		return nil, 0, err
	}

	items := make([]PurchasedItem, 0, len(histories))
	totalPay := 0
	for _, history := range histories {
		if history.Product != nil {
			totalPay += history.Product.Price
			shortened := *history.Product
			shortened.Description = shortened.ShortDescription()
			history.Product = &shortened
		}
		items = append(items, PurchasedItem{
			History:         history,
			DisplayBoughtAt: models.ToDisplayTime(history.CreatedAt),
		})
	}
	return items, totalPay, nil
}
