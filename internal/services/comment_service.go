package services

import (
	"ecsite/internal/models"
	"ecsite/internal/repositories"
)

// CommentService records product comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// Post inserts one comment row for the product. Content is stored verbatim.
func (s *CommentService) Post(productID, userID int64, content string) error {
	return s.commentRepo.Create(&models.Comment{
		ProductID: productID,
		UserID:    userID,
		Content:   content,
		CreatedAt: models.StorageNow(),
	})
}
