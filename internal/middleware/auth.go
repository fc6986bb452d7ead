package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
)

const (
	localUserID = "user_id"
	localUser   = "user"
)

// Auth verifies the bearer token and stashes the caller's id in the
// request locals.
func Auth(secret string) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, no token"})
		}
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, no token"})
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, token failed"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, token failed"})
		}
		id, _ := claims["id"].(string)
		if id == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, token failed"})
		}

		c.Locals(localUserID, id)
		return c.Next()
	}
}

// UserID returns the authenticated caller's id set by Auth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

// CurrentUser returns the full user loaded by RequireRole, if any.
func CurrentUser(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(localUser).(*models.User)
	return u
}

// RequireRole loads the caller from the database and rejects the request
// unless their role is one of the allowed ones. The loaded user is kept in
// the locals for the handler.
func RequireRole(users repository.UserRepository, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := users.FindByID(c.Context(), UserID(c))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not found"})
		}
		for _, r := range roles {
			if u.Role == r {
				c.Locals(localUser, u)
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Access denied"})
	}
}

// LoadUser loads the caller without restricting the role.
func LoadUser(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := users.FindByID(c.Context(), UserID(c))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not found"})
		}
		c.Locals(localUser, u)
		return c.Next()
	}
}
