package repository

import (
	"context"

	"healthlog/internal/domain"
)

// EnsureSeedData populates all three collections with a small set of example
// records so the UI is non-empty on first use. Seeding runs at most once: it
// is gated on the weights collection being empty and is itself persisted.
func (r *Repository) EnsureSeedData(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.loadWeights(ctx)) > 0 {
		return
	}

	height := domain.Float64Ptr(170)
	weights := []domain.WeightRecord{
		{Date: "2025-06-01", Weight: 70.2, Height: height},
		{Date: "2025-06-02", Weight: 70.0, Height: height},
		{Date: "2025-06-03", Weight: 69.8, Height: height},
	}
	meals := []domain.MealRecord{
		{Date: "2025-06-12", Type: "breakfast", Food: "rice", Calories: 168, CreatedAt: r.nextID()},
		{Date: "2025-06-12", Type: "lunch", Food: "bento", Calories: 700, CreatedAt: r.nextID()},
	}
	exercises := []domain.ExerciseRecord{
		{Date: "2025-06-12", Type: "walking", Duration: 30, Calories: 105, CreatedAt: r.nextID()},
	}

	r.persist(ctx, keyWeights, weights)
	r.persist(ctx, keyMeals, meals)
	r.persist(ctx, keyExercises, exercises)
	r.log.Printf("repository: seeded example records on first run")
}
