package app

import (
	"context"
	"errors"
	"sort"

	"healthlog/internal/domain"
)

// DefaultMealType is used when a submission does not name the meal.
const DefaultMealType = "meal"

// MealService encapsulates meal-logging use cases.
type MealService struct {
	repo domain.MealRepository
}

// NewMealService creates a MealService backed by the given repository.
func NewMealService(repo domain.MealRepository) *MealService {
	return &MealService{repo: repo}
}

// Record validates and stores a meal entry. Calories are whatever the user
// confirmed, which may diverge from the catalog suggestion.
func (s *MealService) Record(ctx context.Context, date, mealType, food string, calories int) (domain.MealRecord, error) {
	if date == "" {
		return domain.MealRecord{}, errors.New("date is required")
	}
	if food == "" {
		return domain.MealRecord{}, errors.New("food is required")
	}
	if calories <= 0 {
		return domain.MealRecord{}, errors.New("calories must be > 0")
	}
	if mealType == "" {
		mealType = DefaultMealType
	}
	rec := domain.MealRecord{Date: date, Type: mealType, Food: food, Calories: calories}
	return s.repo.AppendMeal(ctx, rec), nil
}

// Delete removes the meal with the given identity. Unknown identities are a
// no-op.
func (s *MealService) Delete(ctx context.Context, createdAt int64) {
	s.repo.DeleteMeal(ctx, createdAt)
}

// ListForDay returns the meals logged for date, newest first.
func (s *MealService) ListForDay(ctx context.Context, date string) []domain.MealRecord {
	var meals []domain.MealRecord
	for _, m := range s.repo.Meals(ctx) {
		if m.Date == date {
			meals = append(meals, m)
		}
	}
	sort.SliceStable(meals, func(i, j int) bool {
		return meals[i].CreatedAt > meals[j].CreatedAt
	})
	return meals
}
