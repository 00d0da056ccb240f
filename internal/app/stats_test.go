package app_test

import (
	"testing"

	"healthlog/internal/app"
	"healthlog/internal/domain"
)

func TestTodayTotals_FiltersByDay(t *testing.T) {
	meals := []domain.MealRecord{
		{Date: "2025-06-12", Calories: 168},
		{Date: "2025-06-12", Calories: 700},
		{Date: "2025-06-11", Calories: 500},
	}
	exercises := []domain.ExerciseRecord{
		{Date: "2025-06-12", Duration: 30, Calories: 105},
		{Date: "2025-06-10", Duration: 60, Calories: 420},
	}

	got := app.TodayTotals(meals, exercises, "2025-06-12")
	if got.MealCalories != 868 {
		t.Errorf("expected 868 meal kcal, got %d", got.MealCalories)
	}
	if got.MealCount != 2 {
		t.Errorf("expected 2 meals, got %d", got.MealCount)
	}
	if got.ExerciseCalories != 105 {
		t.Errorf("expected 105 exercise kcal, got %d", got.ExerciseCalories)
	}
	if got.ExerciseMinutes != 30 {
		t.Errorf("expected 30 minutes, got %d", got.ExerciseMinutes)
	}
}

func TestTodayTotals_EmptySnapshot(t *testing.T) {
	got := app.TodayTotals(nil, nil, "2025-06-12")
	if got != (app.Totals{}) {
		t.Errorf("expected zero totals, got %+v", got)
	}
}

func TestBodyMetricsFor_BMI(t *testing.T) {
	weights := []domain.WeightRecord{
		{Date: "2025-06-01", Weight: 70.2, Height: domain.Float64Ptr(170)},
	}
	got := app.BodyMetricsFor("2025-06-01", weights)
	if got.Weight == nil || *got.Weight != 70.2 {
		t.Fatalf("expected weight 70.2, got %v", got.Weight)
	}
	if got.BMI == nil || *got.BMI != 24.3 {
		t.Fatalf("expected bmi 24.3, got %v", got.BMI)
	}
}

func TestBodyMetricsFor_NoHeight(t *testing.T) {
	weights := []domain.WeightRecord{{Date: "2025-06-01", Weight: 70.2}}
	got := app.BodyMetricsFor("2025-06-01", weights)
	if got.Weight == nil || *got.Weight != 70.2 {
		t.Fatalf("expected weight 70.2, got %v", got.Weight)
	}
	if got.BMI != nil {
		t.Errorf("expected absent bmi, got %v", *got.BMI)
	}
}

func TestBodyMetricsFor_NoRecord(t *testing.T) {
	got := app.BodyMetricsFor("2025-06-01", nil)
	if got.Weight != nil || got.BMI != nil {
		t.Errorf("expected absent metrics, got %+v", got)
	}
}

func TestRecentSeries_LastNInInsertionOrder(t *testing.T) {
	weights := []domain.WeightRecord{
		{Date: "2025-06-01", Weight: 70.2},
		{Date: "2025-06-02", Weight: 70.0},
		{Date: "2025-06-03", Weight: 69.8},
	}

	got := app.RecentSeries(weights, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Date != "2025-06-02" || got[1].Date != "2025-06-03" {
		t.Errorf("unexpected order: %+v", got)
	}

	all := app.RecentSeries(weights, 10)
	if len(all) != 3 {
		t.Errorf("expected all 3 points when n exceeds len, got %d", len(all))
	}
}

func TestDailySeries_DenseAndZeroFilled(t *testing.T) {
	got, err := app.DailySeries(nil, 7, "2025-06-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("expected 7 points, got %d", len(got))
	}
	if got[0].Date != "2025-06-06" {
		t.Errorf("expected oldest first (2025-06-06), got %s", got[0].Date)
	}
	if got[6].Date != "2025-06-12" {
		t.Errorf("expected last point 2025-06-12, got %s", got[6].Date)
	}
	for _, p := range got {
		if p.TotalCalories != 0 {
			t.Errorf("expected 0 kcal on %s, got %d", p.Date, p.TotalCalories)
		}
	}
}

func TestDailySeries_SumsPerDay(t *testing.T) {
	meals := []domain.MealRecord{
		{Date: "2025-06-11", Calories: 300},
		{Date: "2025-06-12", Calories: 168},
		{Date: "2025-06-12", Calories: 700},
		{Date: "2025-05-01", Calories: 999}, // outside the window
	}
	got, err := app.DailySeries(meals, 3, "2025-06-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []app.CaloriePoint{
		{Date: "2025-06-10", TotalCalories: 0},
		{Date: "2025-06-11", TotalCalories: 300},
		{Date: "2025-06-12", TotalCalories: 868},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestDailySeries_CrossesMonthBoundary(t *testing.T) {
	got, err := app.DailySeries(nil, 3, "2025-07-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Date != "2025-06-29" || got[2].Date != "2025-07-01" {
		t.Errorf("unexpected window: %+v", got)
	}
}

func TestDailySeries_BadToday(t *testing.T) {
	if _, err := app.DailySeries(nil, 7, "junk"); err == nil {
		t.Fatal("expected error for unparsable day")
	}
}
