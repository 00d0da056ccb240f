package app

import (
	"context"
	"errors"
	"sort"

	"healthlog/internal/catalog"
	"healthlog/internal/domain"
)

// ExerciseService encapsulates exercise-logging use cases.
type ExerciseService struct {
	repo    domain.ExerciseRepository
	catalog *catalog.Catalog
}

// NewExerciseService creates an ExerciseService backed by the given
// repository and catalog.
func NewExerciseService(repo domain.ExerciseRepository, cat *catalog.Catalog) *ExerciseService {
	return &ExerciseService{repo: repo, catalog: cat}
}

// Record validates and stores an exercise entry. Calories may be zero (the
// user cleared the suggestion) but never negative.
func (s *ExerciseService) Record(ctx context.Context, date, exerciseType string, duration, calories int) (domain.ExerciseRecord, error) {
	if date == "" {
		return domain.ExerciseRecord{}, errors.New("date is required")
	}
	if exerciseType == "" {
		return domain.ExerciseRecord{}, errors.New("exercise type is required")
	}
	if duration <= 0 {
		return domain.ExerciseRecord{}, errors.New("duration must be > 0")
	}
	if calories < 0 {
		return domain.ExerciseRecord{}, errors.New("calories must be >= 0")
	}
	rec := domain.ExerciseRecord{Date: date, Type: exerciseType, Duration: duration, Calories: calories}
	return s.repo.AppendExercise(ctx, rec), nil
}

// Delete removes the exercise with the given identity. Unknown identities
// are a no-op.
func (s *ExerciseService) Delete(ctx context.Context, createdAt int64) {
	s.repo.DeleteExercise(ctx, createdAt)
}

// ListForDay returns the exercises logged for date, newest first.
func (s *ExerciseService) ListForDay(ctx context.Context, date string) []domain.ExerciseRecord {
	var exercises []domain.ExerciseRecord
	for _, e := range s.repo.Exercises(ctx) {
		if e.Date == date {
			exercises = append(exercises, e)
		}
	}
	sort.SliceStable(exercises, func(i, j int) bool {
		return exercises[i].CreatedAt > exercises[j].CreatedAt
	})
	return exercises
}

// SuggestCalories returns the catalog's kcal estimate for the exercise and
// duration, as a form pre-fill. False when the exercise is unknown or the
// duration is not positive.
func (s *ExerciseService) SuggestCalories(exerciseType string, minutes int) (int, bool) {
	return s.catalog.ExerciseCaloriesFor(exerciseType, minutes)
}
