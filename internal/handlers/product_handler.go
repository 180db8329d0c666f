package handlers

import (
	"errors"
	"fmt"
	"log"

	"ecsite/internal/middleware"
	"ecsite/internal/repositories"
	"ecsite/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles the index page, product pages and the buy and
// comment actions.
type ProductHandler struct {
	catalogService  *services.CatalogService
	purchaseService *services.PurchaseService
	commentService  *services.CommentService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogService *services.CatalogService,
	purchaseService *services.PurchaseService,
	commentService *services.CommentService) *ProductHandler {
	return &ProductHandler{
		catalogService:  catalogService,
		purchaseService: purchaseService,
		commentService:  commentService,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)
	router.Get("/products/:product_id", h.HandleProduct)
	router.Post("/products/buy/:product_id", h.HandleBuy)
	router.Post("/comments/:product_id", h.HandleComment)
}

// HandleIndex renders one page of the product listing. The page query
// parameter is zero-indexed and defaults to the first page.
func (h *ProductHandler) HandleIndex(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)

	products, err := h.catalogService.ListPage(page)
	if err != nil {
		log.Printf("Error listing products page %d: %v", page, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	currentUser, _ := middleware.CurrentUser(c)
	return c.Render("index", fiber.Map{
		"Products":    products,
		"CurrentUser": currentUser,
	})
}

// HandleProduct renders a single product with its comments and whether the
// viewer already bought it.
func (h *ProductHandler) HandleProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("product_id")
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	currentUser, _ := middleware.CurrentUser(c)
	detail, err := h.catalogService.Detail(int64(productID), currentUser)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error loading product %d: %v", productID, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Render("product", fiber.Map{
		"Product":       detail.Product,
		"Comments":      detail.Comments,
		"AlreadyBought": detail.AlreadyBought,
		"CurrentUser":   currentUser,
	})
}

// HandleBuy records a purchase for the logged-in user.
func (h *ProductHandler) HandleBuy(c *fiber.Ctx) error {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	productID, err := c.ParamsInt("product_id")
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := h.purchaseService.Buy(int64(productID), currentUser.ID); err != nil {
		log.Printf("Error buying product %d for user %d: %v", productID, currentUser.ID, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Redirect(fmt.Sprintf("/users/%d", currentUser.ID), fiber.StatusFound)
}

// HandleComment posts a comment on a product for the logged-in user.
func (h *ProductHandler) HandleComment(c *fiber.Ctx) error {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	productID, err := c.ParamsInt("product_id")
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	content := c.FormValue("content")
	if err := h.commentService.Post(int64(productID), currentUser.ID, content); err != nil {
		log.Printf("Error commenting on product %d for user %d: %v", productID, currentUser.ID, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Redirect(fmt.Sprintf("/users/%d", currentUser.ID), fiber.StatusFound)
}
