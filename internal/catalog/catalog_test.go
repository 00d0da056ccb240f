package catalog

import "testing"

func TestCaloriesFor(t *testing.T) {
	c := New()

	kcal, ok := c.CaloriesFor("rice")
	if !ok || kcal != 168 {
		t.Errorf("expected 168 for rice, got %d ok=%v", kcal, ok)
	}
	if _, ok := c.CaloriesFor("unicorn steak"); ok {
		t.Error("expected unknown food to be absent")
	}
}

func TestCaloriesPerMinuteFor(t *testing.T) {
	c := New()

	kcal, ok := c.CaloriesPerMinuteFor("walking")
	if !ok || kcal != 3.5 {
		t.Errorf("expected 3.5 for walking, got %v ok=%v", kcal, ok)
	}
	if _, ok := c.CaloriesPerMinuteFor("parkour"); ok {
		t.Error("expected unknown exercise to be absent")
	}
}

func TestExerciseCaloriesFor(t *testing.T) {
	c := New()

	tests := []struct {
		exercise string
		minutes  int
		want     int
		known    bool
	}{
		{"walking", 30, 105, true},
		{"jogging", 20, 140, true},
		{"yoga", 25, 63, true}, // 62.5 rounds up
		{"walking", 0, 0, false},
		{"parkour", 30, 0, false},
	}
	for _, tc := range tests {
		got, ok := c.ExerciseCaloriesFor(tc.exercise, tc.minutes)
		if ok != tc.known || got != tc.want {
			t.Errorf("%s/%dmin: expected %d known=%v, got %d known=%v",
				tc.exercise, tc.minutes, tc.want, tc.known, got, ok)
		}
	}
}

func TestFoodsAndExercisesSorted(t *testing.T) {
	c := New()

	foods := c.Foods()
	if len(foods) != 20 {
		t.Errorf("expected 20 foods, got %d", len(foods))
	}
	for i := 1; i < len(foods); i++ {
		if foods[i-1] >= foods[i] {
			t.Fatalf("foods not sorted at %d: %q >= %q", i, foods[i-1], foods[i])
		}
	}

	exercises := c.Exercises()
	if len(exercises) != 10 {
		t.Errorf("expected 10 exercises, got %d", len(exercises))
	}
}

func TestSuggestFromFilename(t *testing.T) {
	c := New()

	tests := []struct {
		filename string
		want     string
		known    bool
	}{
		{"IMG_ramen_tonight.jpg", "ramen", true},
		{"Curry-Dinner.png", "curry rice", true},
		{"BURGER.jpeg", "hamburger", true},
		{"vacation.jpg", "", false},
	}
	for _, tc := range tests {
		got, ok := c.SuggestFromFilename(tc.filename)
		if ok != tc.known || got != tc.want {
			t.Errorf("%q: expected %q known=%v, got %q known=%v",
				tc.filename, tc.want, tc.known, got, ok)
		}
	}
}
