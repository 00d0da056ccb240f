// Package catalog holds the static reference tables used to pre-fill meal and
// exercise entries. The tables are suggestions only: a stored record always
// carries the value the user confirmed, even when it diverges from the
// catalog.
package catalog

import (
	"math"
	"sort"
	"strings"
)

// Catalog is an immutable pair of lookup tables, loaded once at startup and
// never mutated.
type Catalog struct {
	foods     map[string]int     // name -> kcal per serving
	exercises map[string]float64 // name -> kcal per minute
}

// New returns the built-in catalog.
func New() *Catalog {
	return &Catalog{
		foods: map[string]int{
			"rice":                  168,
			"bread":                 264,
			"udon":                  105,
			"soba":                  114,
			"ramen":                 500,
			"curry rice":            600,
			"hamburger":             550,
			"pizza":                 290,
			"salad":                 50,
			"steak":                 450,
			"grilled fish":          200,
			"egg":                   151,
			"milk":                  67,
			"apple":                 54,
			"banana":                86,
			"rice ball":             180,
			"bento":                 700,
			"soup":                  80,
			"stir-fried vegetables": 150,
			"chicken cutlet":        400,
		},
		exercises: map[string]float64{
			"walking":           3.5,
			"jogging":           7.0,
			"cycling":           6.0,
			"swimming":          8.0,
			"strength training": 5.0,
			"yoga":              2.5,
			"tennis":            6.5,
			"basketball":        8.5,
			"soccer":            7.5,
			"stair climbing":    4.5,
		},
	}
}

// CaloriesFor returns the kcal per serving for a catalog food.
func (c *Catalog) CaloriesFor(food string) (int, bool) {
	kcal, ok := c.foods[food]
	return kcal, ok
}

// CaloriesPerMinuteFor returns the kcal burned per minute for a catalog
// exercise.
func (c *Catalog) CaloriesPerMinuteFor(exercise string) (float64, bool) {
	kcal, ok := c.exercises[exercise]
	return kcal, ok
}

// ExerciseCaloriesFor returns the rounded kcal estimate for doing exercise
// for the given number of minutes. False when the exercise is unknown or the
// duration is not positive.
func (c *Catalog) ExerciseCaloriesFor(exercise string, minutes int) (int, bool) {
	perMinute, ok := c.exercises[exercise]
	if !ok || minutes <= 0 {
		return 0, false
	}
	return int(math.Round(perMinute * float64(minutes))), true
}

// Foods returns the catalog food names, sorted.
func (c *Catalog) Foods() []string {
	names := make([]string, 0, len(c.foods))
	for name := range c.foods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exercises returns the catalog exercise names, sorted.
func (c *Catalog) Exercises() []string {
	names := make([]string, 0, len(c.exercises))
	for name := range c.exercises {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// suggestionKeywords maps substrings of an uploaded image filename to a
// catalog food.
var suggestionKeywords = []struct {
	keyword string
	food    string
}{
	{"rice", "rice"},
	{"bread", "bread"},
	{"noodle", "udon"},
	{"ramen", "ramen"},
	{"curry", "curry rice"},
	{"burger", "hamburger"},
	{"pizza", "pizza"},
	{"salad", "salad"},
}

// SuggestFromFilename guesses a catalog food from an uploaded image's
// filename. The first matching keyword wins.
func (c *Catalog) SuggestFromFilename(filename string) (string, bool) {
	lower := strings.ToLower(filename)
	for _, s := range suggestionKeywords {
		if strings.Contains(lower, s.keyword) {
			return s.food, true
		}
	}
	return "", false
}
