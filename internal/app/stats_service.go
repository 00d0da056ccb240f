package app

import (
	"context"
	"errors"

	"healthlog/internal/domain"
)

// maxSeriesDays caps chart series length.
const maxSeriesDays = 366

// StatsService assembles dashboard and chart data from repository snapshots.
type StatsService struct {
	weights   domain.WeightRepository
	meals     domain.MealRepository
	exercises domain.ExerciseRepository
}

// NewStatsService creates a StatsService over the given repositories.
func NewStatsService(w domain.WeightRepository, m domain.MealRepository, e domain.ExerciseRepository) *StatsService {
	return &StatsService{weights: w, meals: m, exercises: e}
}

// Dashboard is the one-screen summary for a single day.
type Dashboard struct {
	Today   string      `json:"today"`
	Totals  Totals      `json:"totals"`
	Metrics BodyMetrics `json:"metrics"`
}

// GetDashboard returns today's totals and body metrics. The caller supplies
// the day anchor.
func (s *StatsService) GetDashboard(ctx context.Context, today string) Dashboard {
	return Dashboard{
		Today:   today,
		Totals:  TodayTotals(s.meals.Meals(ctx), s.exercises.Exercises(ctx), today),
		Metrics: BodyMetricsFor(today, s.weights.Weights(ctx)),
	}
}

// GetWeightSeries returns the last n weight records for charting.
func (s *StatsService) GetWeightSeries(ctx context.Context, n int) ([]WeightPoint, error) {
	if n <= 0 {
		return nil, errors.New("n must be > 0")
	}
	if n > maxSeriesDays {
		n = maxSeriesDays
	}
	return RecentSeries(s.weights.Weights(ctx), n), nil
}

// GetCalorieSeries returns the dense daily calorie series for the daysBack
// days ending at today, oldest first.
func (s *StatsService) GetCalorieSeries(ctx context.Context, daysBack int, today string) ([]CaloriePoint, error) {
	if daysBack <= 0 {
		return nil, errors.New("days must be > 0")
	}
	if daysBack > maxSeriesDays {
		daysBack = maxSeriesDays
	}
	return DailySeries(s.meals.Meals(ctx), daysBack, today)
}
