package services

import (
	"errors"

	"github.com/dailydiet/daily-diet-api/internal/dto"
	"github.com/dailydiet/daily-diet-api/internal/models"
	"github.com/dailydiet/daily-diet-api/internal/repository"
	"github.com/dailydiet/daily-diet-api/internal/validation"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ErrMealNotFound is reported both when a meal id does not exist and when it
// belongs to another user. The two cases must stay indistinguishable.
var ErrMealNotFound = errors.New("meal not found")

type MealService struct {
	meals repository.MealRepository
}

func NewMealService(meals repository.MealRepository) *MealService {
	return &MealService{meals: meals}
}

func (s *MealService) Create(userID uuid.UUID, req *dto.CreateMealRequest) (*models.Meal, error) {
	createdAt, err := validation.CreateMeal(req)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        *req.Name,
		Description: *req.Description,
		IsOnDiet:    *req.IsOnDiet,
		CreatedAt:   datatypes.Date(createdAt),
	}
	if err := s.meals.Create(meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// Update validates the body first, then runs the ownership-scoped lookup,
// then applies only the fields present in the request. There is a window
// between the lookup and the save; the repository's own guarantees are the
// source of truth if a concurrent delete lands in it.
func (s *MealService) Update(userID, mealID uuid.UUID, req *dto.UpdateMealRequest) (*models.Meal, error) {
	createdAt, err := validation.UpdateMeal(req)
	if err != nil {
		return nil, err
	}

	meal, err := s.meals.FindByOwnerAndID(userID, mealID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		meal.Name = *req.Name
	}
	if req.Description != nil {
		meal.Description = *req.Description
	}
	if req.IsOnDiet != nil {
		meal.IsOnDiet = *req.IsOnDiet
	}
	if createdAt != nil {
		meal.CreatedAt = datatypes.Date(*createdAt)
	}

	if err := s.meals.Save(meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(userID, mealID uuid.UUID) error {
	if err := s.meals.DeleteByOwnerAndID(userID, mealID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMealNotFound
		}
		return err
	}
	return nil
}

func (s *MealService) List(userID uuid.UUID) ([]models.Meal, error) {
	return s.meals.ListByOwner(userID)
}

// Metrics aggregates the user's full history: registration counts by diet
// flag plus the longest contiguous on-diet run.
func (s *MealService) Metrics(userID uuid.UUID) (*dto.MealMetricsResponse, error) {
	meals, err := s.meals.ListByOwner(userID)
	if err != nil {
		return nil, err
	}

	onDiet := 0
	for _, meal := range meals {
		if meal.IsOnDiet {
			onDiet++
		}
	}

	return &dto.MealMetricsResponse{
		TotalMealsRegistered:      len(meals),
		TotalMealsOnDiet:          onDiet,
		TotalMealsOffDiet:         len(meals) - onDiet,
		BestSequenceOfMealsOnDiet: bestOnDietSequence(meals),
	}, nil
}
