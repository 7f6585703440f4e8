package handlers

import (
	"errors"

	"github.com/dailydiet/daily-diet-api/internal/dto"
	"github.com/dailydiet/daily-diet-api/internal/services"
	"github.com/dailydiet/daily-diet-api/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /users - registers an account and issues its session
// credential.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		var ve *validation.Error
		if errors.As(err, &ve) {
			return fail(c, fiber.StatusBadRequest, ve.Message)
		}
		if errors.Is(err, services.ErrEmailTaken) {
			return fail(c, fiber.StatusBadRequest, "email address is invalid")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user))
}

// GetByID handles GET /users/:id.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "params id must be a valid UUID")
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"user": dto.NewUserResponse(user)})
}

// Update handles PUT /users/:id - partial update of username and email.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "params id must be a valid UUID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		var ve *validation.Error
		if errors.As(err, &ve) {
			return fail(c, fiber.StatusBadRequest, ve.Message)
		}
		if errors.Is(err, services.ErrEmailTaken) {
			return fail(c, fiber.StatusBadRequest, "email address is invalid")
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(dto.NewUserResponse(user))
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "params id must be a valid UUID")
	}

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, "user not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
