// Package domain defines the record types and repository ports for the
// health log.
package domain

import "context"

// DayFormat is the calendar-day layout used everywhere a date crosses an
// interface. Dates are local calendar-day strings with no time component.
const DayFormat = "2006-01-02"

// WeightRecord is one body measurement. At most one record exists per Day;
// recording again on the same day replaces the earlier entry. Height is
// optional and serializes to null when absent.
type WeightRecord struct {
	Date   string   `json:"date"`
	Weight float64  `json:"weight"`
	Height *float64 `json:"height"`
}

// MealRecord is one logged meal. CreatedAt is the record's identity: assigned
// once by the repository, never reused, and the only key deletion accepts.
type MealRecord struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	Food      string `json:"food"`
	Calories  int    `json:"calories"`
	CreatedAt int64  `json:"timestamp"`
}

// ExerciseRecord is one logged exercise session. Identity rules match
// MealRecord.
type ExerciseRecord struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	Duration  int    `json:"duration"`
	Calories  int    `json:"calories"`
	CreatedAt int64  `json:"timestamp"`
}

// WeightRepository is the port for weight persistence.
//
// Repository methods return no error: storage faults are absorbed by the
// persistence layer, which degrades to process-local memory rather than
// failing the caller. Deleting an absent record is a no-op.
type WeightRepository interface {
	UpsertWeight(ctx context.Context, rec WeightRecord) WeightRecord
	DeleteWeight(ctx context.Context, date string)
	Weights(ctx context.Context) []WeightRecord
	LastKnownHeight(ctx context.Context) (float64, bool)
}

// MealRepository is the port for meal persistence.
type MealRepository interface {
	AppendMeal(ctx context.Context, rec MealRecord) MealRecord
	DeleteMeal(ctx context.Context, createdAt int64)
	Meals(ctx context.Context) []MealRecord
}

// ExerciseRepository is the port for exercise persistence.
type ExerciseRepository interface {
	AppendExercise(ctx context.Context, rec ExerciseRecord) ExerciseRecord
	DeleteExercise(ctx context.Context, createdAt int64)
	Exercises(ctx context.Context) []ExerciseRecord
}

// Float64Ptr returns a pointer to v, for optional fields.
func Float64Ptr(v float64) *float64 { return &v }
