package handlers

import (
	"errors"
	"log"

	"ecsite/internal/middleware"
	"ecsite/internal/repositories"
	"ecsite/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles the user purchase-history page.
type UserHandler struct {
	userRepo        repositories.UserRepository
	purchaseService *services.PurchaseService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userRepo repositories.UserRepository,
	purchaseService *services.PurchaseService) *UserHandler {
	return &UserHandler{
		userRepo:        userRepo,
		purchaseService: purchaseService,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users/:user_id", h.HandleMypage)
}

// HandleMypage renders a user's purchase history and total spend. The page
// is public: any user id can be viewed without logging in.
func (h *UserHandler) HandleMypage(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	user, err := h.userRepo.GetByID(int64(userID))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error loading user %d: %v", userID, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	items, totalPay, err := h.purchaseService.HistoryOf(user.ID)
	if err != nil {
		log.Printf("Error loading purchase history for user %d: %v", userID, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	currentUser, _ := middleware.CurrentUser(c)
	return c.Render("mypage", fiber.Map{
		"User":        user,
		"Items":       items,
		"TotalPay":    totalPay,
		"CurrentUser": currentUser,
	})
}
