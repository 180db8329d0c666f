package middleware

import (
	"time"

	"ecsite/internal/models"
	"ecsite/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "ec_session"

// currentUserKey is where the resolved user lives in the request locals.
const currentUserKey = "current_user"

// LoadSession resolves the session cookie to a full user row once per
// request and stashes it in the request locals. It never rejects the
// request: protected handlers do their own explicit check via CurrentUser.
func LoadSession(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token != "" {
			if user, err := authService.ResolveSession(token); err == nil {
				c.Locals(currentUserKey, user)
			}
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, if any.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(currentUserKey).(*models.User)
	return user, ok
}

// SetSessionCookie attaches a freshly issued session token to the response.
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
	})
}

// ClearSessionCookie drops the session, logging the browser out.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	c.Locals(currentUserKey, nil)
}
