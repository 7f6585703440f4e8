package routes

import (
	"github.com/dailydiet/daily-diet-api/internal/handlers"
	"github.com/dailydiet/daily-diet-api/internal/middleware"
	"github.com/dailydiet/daily-diet-api/internal/repository"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	users repository.UserRepository,
	userHandler *handlers.UserHandler,
	mealHandler *handlers.MealHandler,
	statusHandler *handlers.StatusHandler,
) {
	app.Get("/status", statusHandler.Check)

	// User management is unauthenticated; the session credential is issued
	// here and only guards the meal routes.
	app.Post("/users", userHandler.Create)
	app.Get("/users/:id", userHandler.GetByID)
	app.Put("/users/:id", userHandler.Update)
	app.Delete("/users/:id", userHandler.Delete)

	meals := app.Group("/meals", middleware.SessionProtected(users))
	meals.Get("/", mealHandler.List)
	meals.Post("/", mealHandler.Create)
	// metrics before :id so the literal segment wins
	meals.Get("/metrics", mealHandler.Metrics)
	meals.Put("/:id", mealHandler.Update)
	meals.Delete("/:id", mealHandler.Delete)
}
