package services

import (
	"time"

	"ecsite/internal/models"
	"ecsite/internal/repositories"
)

const (
	// PageSize is how many products a listing page shows.
	PageSize = 50
	// recentCommentLimit caps the comments attached to each listed product.
	recentCommentLimit = 5
)

// ListedProduct is a catalog row shaped for the index view: truncated
// description, display-time timestamp and recent comment metadata.
type ListedProduct struct {
	models.Product
	DisplayCreatedAt time.Time
	Comments         []models.Comment
	CommentCount     int64
}

// ProductDetail is the data behind a single product page.
type ProductDetail struct {
	Product       models.Product
	Comments      []models.Comment
	AlreadyBought bool
}

// CatalogService assembles product listings and product pages.
type CatalogService struct {
	productRepo repositories.ProductRepository
	commentRepo repositories.CommentRepository
	historyRepo repositories.HistoryRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository,
	commentRepo repositories.CommentRepository,
	historyRepo repositories.HistoryRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		commentRepo: commentRepo,
		historyRepo: historyRepo,
	}
}

// ListPage returns one zero-indexed page of products, newest id first, each
// carrying its most recent comments and total comment count.
func (s *CatalogService) ListPage(page int) ([]ListedProduct, error) {
	products, err := s.productRepo.ListPage(PageSize, page*PageSize)
	if err != nil {
		return nil, err
	}

	listed := make([]ListedProduct, 0, len(products))
	for _, product := range products {
		comments, err := s.commentRepo.RecentByProduct(product.ID, recentCommentLimit)
		if err != nil {
			return nil, err
		}
		count, err := s.commentRepo.CountByProduct(product.ID)
		if err != nil {
			return nil, err
		}

		product.Description = product.ShortDescription()
		listed = append(listed, ListedProduct{
			Product:          product,
			DisplayCreatedAt: models.ToDisplayTime(product.CreatedAt),
			Comments:         comments,
			CommentCount:     count,
		})
	}
	return listed, nil
}

// Detail loads a single product with its full comment list and, when a
// viewer is logged in, whether that viewer already bought it.
func (s *CatalogService) Detail(productID int64, viewer *models.User) (*ProductDetail, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}

	alreadyBought := false
	if viewer != nil {
		count, err := s.historyRepo.CountByProductAndUser(productID, viewer.ID)
		if err != nil {
			return nil, err
		}
		alreadyBought = count > 0
	}

	return &ProductDetail{
		Product:       *product,
		Comments:      comments,
		AlreadyBought: alreadyBought,
	}, nil
}
