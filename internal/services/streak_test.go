package services

import (
	"testing"

	"github.com/dailydiet/daily-diet-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func mealsFromFlags(flags []bool) []models.Meal {
	meals := make([]models.Meal, len(flags))
	for i, onDiet := range flags {
		meals[i] = models.Meal{IsOnDiet: onDiet}
	}
	return meals
}

func TestBestOnDietSequence(t *testing.T) {
	tests := []struct {
		name  string
		flags []bool
		want  int
	}{
		{name: "empty history", flags: nil, want: 0},
		{name: "single on-diet meal", flags: []bool{true}, want: 1},
		{name: "single off-diet meal", flags: []bool{false}, want: 0},
		{name: "all on diet", flags: []bool{true, true, true, true}, want: 4},
		{name: "all off diet", flags: []bool{false, false, false}, want: 0},
		{name: "run at the end", flags: []bool{true, true, false, true, true, true}, want: 3},
		{name: "run at the start", flags: []bool{true, true, true, false, true}, want: 3},
		{name: "run in the middle", flags: []bool{false, true, true, false}, want: 2},
		{name: "alternating", flags: []bool{true, false, true, false, true}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bestOnDietSequence(mealsFromFlags(tt.flags)))
		})
	}
}

func TestStreakStateAdvance(t *testing.T) {
	s := streakState{}
	s = s.advance(true)
	s = s.advance(true)
	assert.Equal(t, streakState{current: 2, best: 2}, s)

	s = s.advance(false)
	assert.Equal(t, streakState{current: 0, best: 2}, s)

	s = s.advance(true)
	assert.Equal(t, streakState{current: 1, best: 2}, s)
}
