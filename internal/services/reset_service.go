package services

import "ecsite/internal/repositories"

// Benchmark reset thresholds: rows with ids above these survive seeding and
// are wiped by the reset hook.
const (
	maxSeededUserID    = 5000
	maxSeededProductID = 10000
	maxSeededCommentID = 200000
	maxSeededHistoryID = 500000
)

// ResetService restores the store to its seeded state.
type ResetService struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	commentRepo repositories.CommentRepository
	historyRepo repositories.HistoryRepository
}

// NewResetService creates a new ResetService.
func NewResetService(userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	commentRepo repositories.CommentRepository,
	historyRepo repositories.HistoryRepository) *ResetService {
	return &ResetService{
		userRepo:    userRepo,
		productRepo: productRepo,
		commentRepo: commentRepo,
		historyRepo: historyRepo,
	}
}

// Reset deletes every row created since seeding, leaving seeded rows intact.
func (s *ResetService) Reset() error {
	if err := s.userRepo.DeleteWithIDAbove(maxSeededUserID); err != nil {
		return err
	}
	if err := s.productRepo.DeleteWithIDAbove(maxSeededProductID); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteWithIDAbove(maxSeededCommentID); err != nil {
		return err
	}
	return s.historyRepo.DeleteWithIDAbove(maxSeededHistoryID)
}
