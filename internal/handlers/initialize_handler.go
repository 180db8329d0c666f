package handlers

import (
	"log"

	"ecsite/internal/services"

	"github.com/gofiber/fiber/v2"
)

// InitializeHandler exposes the benchmark reset hook.
type InitializeHandler struct {
	resetService *services.ResetService
}

// NewInitializeHandler creates a new InitializeHandler.
func NewInitializeHandler(resetService *services.ResetService) *InitializeHandler {
	return &InitializeHandler{resetService: resetService}
}

// RegisterRoutes registers the reset route with the Fiber app.
func (h *InitializeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/initialize", h.HandleInitialize)
}

// HandleInitialize wipes every row created since seeding and reports plain
// text completion, as the benchmark harness expects.
func (h *InitializeHandler) HandleInitialize(c *fiber.Ctx) error {
	if err := h.resetService.Reset(); err != nil {
		log.Printf("Error resetting store: %v", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendString("Finish")
}
