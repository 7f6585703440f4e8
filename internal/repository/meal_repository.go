package repository

import (
	"errors"
	"fmt"

	"github.com/dailydiet/daily-diet-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealRepository is the durable storage contract for meals. Every lookup and
// mutation that takes a user id is ownership-scoped in a single query, so a
// meal owned by someone else is indistinguishable from one that does not
// exist.
type MealRepository interface {
	Create(meal *models.Meal) error
	FindByOwnerAndID(userID, mealID uuid.UUID) (*models.Meal, error)
	Save(meal *models.Meal) error
	DeleteByOwnerAndID(userID, mealID uuid.UUID) error
	ListByOwner(userID uuid.UUID) ([]models.Meal, error)
}

type GormMealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *GormMealRepository {
	return &GormMealRepository{db: db}
}

func (r *GormMealRepository) Create(meal *models.Meal) error {
	if err := r.db.Create(meal).Error; err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}
	return nil
}

func (r *GormMealRepository) FindByOwnerAndID(userID, mealID uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find meal: %w", err)
	}
	return &meal, nil
}

func (r *GormMealRepository) Save(meal *models.Meal) error {
	if err := r.db.Save(meal).Error; err != nil {
		return fmt.Errorf("failed to save meal: %w", err)
	}
	return nil
}

func (r *GormMealRepository) DeleteByOwnerAndID(userID, mealID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", mealID, userID).Delete(&models.Meal{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete meal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByOwner returns the user's full meal history, newest first. The id
// tiebreak keeps the order stable for meals registered on the same date.
func (r *GormMealRepository) ListByOwner(userID uuid.UUID) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	return meals, nil
}
