package handlers

import (
	"log/slog"
	"time"

	"github.com/dailydiet/daily-diet-api/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type StatusHandler struct {
	ping func() error
}

// NewStatusHandler takes the storage connectivity probe as a function so the
// handler stays testable without a database.
func NewStatusHandler(ping func() error) *StatusHandler {
	return &StatusHandler{ping: ping}
}

// Check handles GET /status - liveness plus a storage connectivity snapshot.
// Storage failure is the one fault this service reports explicitly as a 500.
func (h *StatusHandler) Check(c *fiber.Ctx) error {
	status := "ok"
	db := "ok"
	code := fiber.StatusOK

	if err := h.ping(); err != nil {
		slog.Error("storage connectivity check failed", "error", err)
		status = "error"
		db = "unhealthy"
		code = fiber.StatusInternalServerError
	}

	return c.Status(code).JSON(dto.StatusResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        db,
	})
}
