package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tactics/internal/models"
)

// Session keys written by the OIDC callback.
const (
	SessionUserSub     = "user_sub"
	SessionUserName    = "user_name"
	SessionUserEmail   = "user_email"
	SessionUserPicture = "user_picture"
)

// AuthMiddleware handles user authentication via sessions.
type AuthMiddleware struct {
	enabled bool
}

// NewAuthMiddleware creates a new auth middleware instance.
// When enabled is false every route is public.
func NewAuthMiddleware(enabled bool) *AuthMiddleware {
	return &AuthMiddleware{enabled: enabled}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if not.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if !m.enabled {
		return c.Next()
	}

	sess := session.FromContext(c)
	if sess == nil {
		return c.Redirect().To("/login")
	}

	user := userFromSession(sess)
	if user == nil {
		return c.Redirect().To("/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// RequireAPIAuth is RequireAuth for JSON routes; it answers 401 instead of redirecting.
func (m *AuthMiddleware) RequireAPIAuth(c fiber.Ctx) error {
	if !m.enabled {
		return c.Next()
	}

	sess := session.FromContext(c)
	user := userFromSession(sess)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "authentication required",
		})
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if !m.enabled {
		return c.Next()
	}

	if user := userFromSession(session.FromContext(c)); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}

func userFromSession(sess *session.Middleware) *models.User {
	if sess == nil {
		return nil
	}
	sub, _ := sess.Get(SessionUserSub).(string)
	if sub == "" {
		return nil
	}
	name, _ := sess.Get(SessionUserName).(string)
	email, _ := sess.Get(SessionUserEmail).(string)
	picture, _ := sess.Get(SessionUserPicture).(string)
	return &models.User{
		Sub:     sub,
		Name:    name,
		Email:   email,
		Picture: picture,
	}
}
