package middleware

import (
	"github.com/dailydiet/daily-diet-api/internal/dto"
	"github.com/dailydiet/daily-diet-api/internal/repository"
	"github.com/dailydiet/daily-diet-api/internal/session"
	"github.com/gofiber/fiber/v2"
)

// SessionProtected rejects any request whose sessionId cookie cannot be
// resolved to an account. The 401 body is identical for a missing cookie, a
// malformed token and an unknown token.
func SessionProtected(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _, err := session.Resolve(c.Cookies(session.CookieName), users)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:      "Unauthorized",
				Message:    "Unauthorized",
				StatusCode: fiber.StatusUnauthorized,
			})
		}
		session.Store(c, user)
		return c.Next()
	}
}
