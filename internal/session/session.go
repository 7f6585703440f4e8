// Package session resolves the opaque per-user credential carried by the
// sessionId cookie. Missing, malformed and unknown credentials all fail the
// same way so that nothing about account existence leaks.
package session

import (
	"errors"
	"time"

	"github.com/dailydiet/daily-diet-api/internal/models"
	"github.com/dailydiet/daily-diet-api/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrUnauthorized covers every credential failure uniformly.
var ErrUnauthorized = errors.New("Unauthorized")

// CookieName is where the credential travels on every meal request.
const CookieName = "sessionId"

const localsKey = "currentUser"

// Session binds a credential to the account it identifies. ExpiresAt is
// reserved for future use; credentials currently never expire.
type Session struct {
	Token     uuid.UUID
	UserID    uuid.UUID
	ExpiresAt *time.Time
}

// Resolve validates a raw cookie value and looks it up, returning the
// authenticated account and its session. The pipeline is terminal on first
// failure: no credential, bad token shape, unresolved token.
func Resolve(token string, users repository.UserRepository) (*models.User, *Session, error) {
	if token == "" {
		return nil, nil, ErrUnauthorized
	}
	sessionID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil, ErrUnauthorized
	}
	user, err := users.FindBySessionID(sessionID)
	if err != nil {
		return nil, nil, ErrUnauthorized
	}
	return user, &Session{Token: sessionID, UserID: user.ID}, nil
}

// Store attaches the authenticated identity to the request for downstream
// handlers. It is never persisted or logged.
func Store(c *fiber.Ctx, user *models.User) {
	c.Locals(localsKey, user)
}

// CurrentUser returns the identity attached by the session middleware.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(localsKey).(*models.User)
	if !ok {
		return nil, ErrUnauthorized
	}
	return user, nil
}
