package validation

import (
	"strings"
	"time"

	"github.com/dailydiet/daily-diet-api/internal/dto"
)

// mealDateFormats are the accepted created_at representations, tried in
// order. The stored value is a plain date either way.
var mealDateFormats = []string{time.RFC3339, "2006-01-02"}

func parseMealDate(raw string) (time.Time, error) {
	for _, format := range mealDateFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t.Truncate(24 * time.Hour), nil
		}
	}
	return time.Time{}, errorf("created_at must be a valid date")
}

// CreateMeal enforces the creation contract: all four fields required,
// missing ones reported together in schema order, created_at coerced to a
// date. Present name/description must be non-blank.
func CreateMeal(req *dto.CreateMealRequest) (time.Time, error) {
	var missing []string
	if req.Name == nil {
		missing = append(missing, "name")
	}
	if req.Description == nil {
		missing = append(missing, "description")
	}
	if req.IsOnDiet == nil {
		missing = append(missing, "is_on_diet")
	}
	if req.CreatedAt == nil {
		missing = append(missing, "created_at")
	}
	if len(missing) > 0 {
		return time.Time{}, missingProperties(missing)
	}
	if strings.TrimSpace(*req.Name) == "" {
		return time.Time{}, errorf("name cannot be empty")
	}
	if strings.TrimSpace(*req.Description) == "" {
		return time.Time{}, errorf("description cannot be empty")
	}
	return parseMealDate(*req.CreatedAt)
}

// UpdateMeal enforces the partial-update contract. At least one of
// name/description/is_on_diet must be present; present string fields must be
// non-blank. Presence and emptiness are independent checks, in that order.
// Returns the coerced created_at when the body carries one.
func UpdateMeal(req *dto.UpdateMealRequest) (*time.Time, error) {
	if req.Name == nil && req.Description == nil && req.IsOnDiet == nil {
		return nil, errorf("body must have at least one property to update")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, errorf("name cannot be empty")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return nil, errorf("description cannot be empty")
	}
	if req.CreatedAt != nil {
		createdAt, err := parseMealDate(*req.CreatedAt)
		if err != nil {
			return nil, err
		}
		return &createdAt, nil
	}
	return nil, nil
}
