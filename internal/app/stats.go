package app

import (
	"fmt"
	"math"
	"time"

	"healthlog/internal/domain"
)

// The aggregation functions in this file are pure: they operate on a snapshot
// the caller already holds and take the "today" anchor as an argument, never
// reading the wall clock. That keeps them testable without a storage medium
// and deterministic for any snapshot.

// Totals are the dashboard sums for a single day.
type Totals struct {
	MealCalories     int `json:"totalMealCalories"`
	MealCount        int `json:"mealCount"`
	ExerciseCalories int `json:"totalExerciseCalories"`
	ExerciseMinutes  int `json:"totalExerciseMinutes"`
}

// TodayTotals sums the meal and exercise entries whose date equals today.
func TodayTotals(meals []domain.MealRecord, exercises []domain.ExerciseRecord, today string) Totals {
	var t Totals
	for _, m := range meals {
		if m.Date == today {
			t.MealCalories += m.Calories
			t.MealCount++
		}
	}
	for _, e := range exercises {
		if e.Date == today {
			t.ExerciseCalories += e.Calories
			t.ExerciseMinutes += e.Duration
		}
	}
	return t
}

// BodyMetrics carries the weight and derived BMI for one day. Both fields are
// absent when no record exists for the day; BMI alone is absent when the
// record has no height.
type BodyMetrics struct {
	Weight *float64 `json:"weight"`
	BMI    *float64 `json:"bmi"`
}

// BodyMetricsFor returns the weight and BMI for the record matching date.
// BMI is weight / (height/100)^2 rounded to one decimal.
func BodyMetricsFor(date string, weights []domain.WeightRecord) BodyMetrics {
	for _, w := range weights {
		if w.Date != date {
			continue
		}
		m := BodyMetrics{Weight: domain.Float64Ptr(w.Weight)}
		if w.Height != nil {
			h := *w.Height / 100
			bmi := math.Round(w.Weight/(h*h)*10) / 10
			m.BMI = domain.Float64Ptr(bmi)
		}
		return m
	}
	return BodyMetrics{}
}

// WeightPoint is one entry of a weight chart series.
type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// RecentSeries returns the last n weight records in insertion order. Upsert
// semantics replace in place, so a collection built day by day is already
// chronological.
func RecentSeries(weights []domain.WeightRecord, n int) []WeightPoint {
	start := 0
	if len(weights) > n {
		start = len(weights) - n
	}
	points := make([]WeightPoint, 0, len(weights)-start)
	for _, w := range weights[start:] {
		points = append(points, WeightPoint{Date: w.Date, Weight: w.Weight})
	}
	return points
}

// CaloriePoint is one entry of a daily calorie chart series.
type CaloriePoint struct {
	Date          string `json:"date"`
	TotalCalories int    `json:"totalCalories"`
}

// DailySeries sums meal calories for each of the daysBack calendar days
// ending at today, oldest first. The series is dense: days with no meals
// yield zero, whatever dates exist in the collection.
func DailySeries(meals []domain.MealRecord, daysBack int, today string) ([]CaloriePoint, error) {
	end, err := time.Parse(domain.DayFormat, today)
	if err != nil {
		return nil, fmt.Errorf("invalid day %q: %w", today, err)
	}

	totals := make(map[string]int, len(meals))
	for _, m := range meals {
		totals[m.Date] += m.Calories
	}

	points := make([]CaloriePoint, 0, daysBack)
	for i := daysBack - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i).Format(domain.DayFormat)
		points = append(points, CaloriePoint{Date: day, TotalCalories: totals[day]})
	}
	return points, nil
}
