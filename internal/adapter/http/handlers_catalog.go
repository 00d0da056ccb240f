package adapthttp

import (
	"errors"
	"net/http"
)

func (s *Server) handleCatalogFoods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	type food struct {
		Name     string `json:"name"`
		Calories int    `json:"calories"`
	}
	items := make([]food, 0)
	for _, name := range s.catalog.Foods() {
		kcal, _ := s.catalog.CaloriesFor(name)
		items = append(items, food{Name: name, Calories: kcal})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCatalogExercises(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	type exercise struct {
		Name              string  `json:"name"`
		CaloriesPerMinute float64 `json:"caloriesPerMinute"`
	}
	items := make([]exercise, 0)
	for _, name := range s.catalog.Exercises() {
		kcal, _ := s.catalog.CaloriesPerMinuteFor(name)
		items = append(items, exercise{Name: name, CaloriesPerMinute: kcal})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// handleFoodSuggest guesses a catalog food from an uploaded image's filename,
// as a select-box pre-fill.
func (s *Server) handleFoodSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	filename := r.URL.Query().Get("filename")
	if filename == "" {
		writeError(w, http.StatusBadRequest, errors.New("filename is required"))
		return
	}
	food, ok := s.catalog.SuggestFromFilename(filename)
	resp := map[string]any{"known": ok, "food": food}
	if ok {
		if kcal, found := s.catalog.CaloriesFor(food); found {
			resp["calories"] = kcal
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
