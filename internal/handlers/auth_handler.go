package handlers

import (
	"errors"
	"log"

	"ecsite/internal/middleware"
	"ecsite/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the login and logout pages.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/login", h.HandleLoginForm)
	router.Post("/login", h.HandleLogin)
	router.Get("/logout", h.HandleLogout)
}

// HandleLoginForm renders the login form, dropping any existing session.
func (h *AuthHandler) HandleLoginForm(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return renderLogin(c, fiber.StatusOK, loginWelcomeMessage)
}

// HandleLogin checks the submitted credentials and opens a session.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.authService.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			middleware.ClearSessionCookie(c)
			return renderLogin(c, fiber.StatusUnauthorized, loginFailedMessage)
		}
		log.Printf("Error authenticating %s: %v", email, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	token, err := h.authService.IssueSession(user)
	if err != nil {
		log.Printf("Error issuing session for user %d: %v", user.ID, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	middleware.SetSessionCookie(c, token)
	return c.Redirect("/", fiber.StatusFound)
}

// HandleLogout clears the session and returns to the login form.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusFound)
}
