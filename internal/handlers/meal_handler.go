package handlers

import (
	"errors"

	"github.com/dailydiet/daily-diet-api/internal/dto"
	"github.com/dailydiet/daily-diet-api/internal/services"
	"github.com/dailydiet/daily-diet-api/internal/session"
	"github.com/dailydiet/daily-diet-api/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MealHandler struct {
	mealService *services.MealService
}

func NewMealHandler(mealService *services.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

// List handles GET /meals - the authenticated user's meals, newest first.
func (h *MealHandler) List(c *fiber.Ctx) error {
	user, err := session.CurrentUser(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	meals, err := h.mealService.List(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewMealListResponse(meals))
}

// Create handles POST /meals. Replies 200 with the created meal.
func (h *MealHandler) Create(c *fiber.Ctx) error {
	user, err := session.CurrentUser(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateMealRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	meal, err := h.mealService.Create(user.ID, &req)
	if err != nil {
		var ve *validation.Error
		if errors.As(err, &ve) {
			return fail(c, fiber.StatusBadRequest, ve.Message)
		}
		return err
	}

	return c.JSON(dto.NewMealResponse(meal))
}

// Update handles PUT /meals/:id - partial update, owner only. A meal owned
// by someone else reports the same 404 as a missing one.
func (h *MealHandler) Update(c *fiber.Ctx) error {
	user, err := session.CurrentUser(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	mealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "params id must be a valid uuid")
	}

	var req dto.UpdateMealRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	meal, err := h.mealService.Update(user.ID, mealID, &req)
	if err != nil {
		var ve *validation.Error
		if errors.As(err, &ve) {
			return fail(c, fiber.StatusBadRequest, ve.Message)
		}
		if errors.Is(err, services.ErrMealNotFound) {
			return fail(c, fiber.StatusNotFound, "meal not found")
		}
		return err
	}

	return c.JSON(dto.NewMealResponse(meal))
}

// Delete handles DELETE /meals/:id - owner only, hard delete.
func (h *MealHandler) Delete(c *fiber.Ctx) error {
	user, err := session.CurrentUser(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	mealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "params id must be a valid uuid")
	}

	if err := h.mealService.Delete(user.ID, mealID); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return fail(c, fiber.StatusNotFound, "meal not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Metrics handles GET /meals/metrics - aggregate counts and the best on-diet
// sequence over the user's full history.
func (h *MealHandler) Metrics(c *fiber.Ctx) error {
	user, err := session.CurrentUser(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	metrics, err := h.mealService.Metrics(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(metrics)
}
