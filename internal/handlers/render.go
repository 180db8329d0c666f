package handlers

import "github.com/gofiber/fiber/v2"

// Messages shown on the login view.
const (
	loginWelcomeMessage  = "Welcome to the EC site. Please log in."
	loginFailedMessage   = "Wrong email or password."
	loginRequiredMessage = "Please log in first."
	permissionDeniedMsg  = "You are not allowed to do that."
)

// renderLogin renders the login view with the given status and message. Auth
// failures across the site funnel through here.
func renderLogin(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render("login", fiber.Map{
		"Message": message,
	})
}

// unauthorized is the early-return taken by protected handlers when no valid
// session is present.
func unauthorized(c *fiber.Ctx) error {
	return renderLogin(c, fiber.StatusUnauthorized, loginRequiredMessage)
}

// forbidden renders the 403 variant. No current route raises it; the
// response shape is defined for parity with unauthorized.
func forbidden(c *fiber.Ctx) error {
	return renderLogin(c, fiber.StatusForbidden, permissionDeniedMsg)
}
