package dto

import (
	"time"

	"github.com/dailydiet/daily-diet-api/internal/models"
	"github.com/google/uuid"
)

type CreateMealRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsOnDiet    *bool   `json:"is_on_diet"`
	CreatedAt   *string `json:"created_at"`
}

type UpdateMealRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsOnDiet    *bool   `json:"is_on_diet"`
	CreatedAt   *string `json:"created_at"`
}

type MealResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsOnDiet    bool      `json:"is_on_diet"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MealMetricsResponse struct {
	TotalMealsRegistered      int `json:"total_meals_registered"`
	TotalMealsOnDiet          int `json:"total_meals_on_diet"`
	TotalMealsOffDiet         int `json:"total_meals_off_diet"`
	BestSequenceOfMealsOnDiet int `json:"best_sequence_of_meals_on_diet"`
}

func NewMealResponse(meal *models.Meal) MealResponse {
	return MealResponse{
		ID:          meal.ID,
		UserID:      meal.UserID,
		Name:        meal.Name,
		Description: meal.Description,
		IsOnDiet:    meal.IsOnDiet,
		CreatedAt:   time.Time(meal.CreatedAt).Format("2006-01-02"),
		UpdatedAt:   meal.UpdatedAt,
	}
}

func NewMealListResponse(meals []models.Meal) []MealResponse {
	responses := make([]MealResponse, len(meals))
	for i := range meals {
		responses[i] = NewMealResponse(&meals[i])
	}
	return responses
}
