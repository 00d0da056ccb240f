package adapthttp

import (
	"errors"
	"net/http"
	"time"
)

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		date := dayQuery(r)
		items := s.exercises.ListForDay(ctx, date)
		totalCalories, totalMinutes := 0, 0
		for _, e := range items {
			totalCalories += e.Calories
			totalMinutes += e.Duration
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"date":          date,
			"items":         items,
			"totalCalories": totalCalories,
			"totalMinutes":  totalMinutes,
		})

	case http.MethodPost:
		var body struct {
			Date     string `json:"date"`
			Type     string `json:"type"`
			Duration int    `json:"duration"`
			Calories int    `json:"calories"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if body.Date == "" {
			body.Date = localDayString(time.Now())
		}
		rec, err := s.exercises.Record(ctx, body.Date, body.Type, body.Duration, body.Calories)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"entry": rec})

	case http.MethodDelete:
		ts, err := timestampQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		s.exercises.Delete(ctx, ts)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleExerciseSuggest serves the form's kcal auto-calculation.
func (s *Server) handleExerciseSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	exerciseType := r.URL.Query().Get("type")
	minutes := intQuery(r, "minutes", 0)
	if exerciseType == "" || minutes <= 0 {
		writeError(w, http.StatusBadRequest, errors.New("type and minutes are required"))
		return
	}
	kcal, ok := s.exercises.SuggestCalories(exerciseType, minutes)
	writeJSON(w, http.StatusOK, map[string]any{"known": ok, "calories": kcal})
}
