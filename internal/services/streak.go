package services

import "github.com/dailydiet/daily-diet-api/internal/models"

// streakState is the accumulator of the longest-run fold: the run currently
// being extended and the best one seen so far.
type streakState struct {
	current int
	best    int
}

func (s streakState) advance(onDiet bool) streakState {
	if !onDiet {
		return streakState{current: 0, best: s.best}
	}
	next := streakState{current: s.current + 1, best: s.best}
	if next.current > next.best {
		next.best = next.current
	}
	return next
}

// bestOnDietSequence returns the length of the longest contiguous run of
// on-diet meals anywhere in the history. It is a global maximum, so the
// ordering direction of the input does not change the result.
func bestOnDietSequence(meals []models.Meal) int {
	state := streakState{}
	for _, meal := range meals {
		state = state.advance(meal.IsOnDiet)
	}
	return state.best
}
