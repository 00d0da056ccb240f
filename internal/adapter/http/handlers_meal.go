package adapthttp

import (
	"errors"
	"net/http"
	"strconv"
	"time"
)

func (s *Server) handleMeals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		date := dayQuery(r)
		items := s.meals.ListForDay(ctx, date)
		total := 0
		for _, m := range items {
			total += m.Calories
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"date":          date,
			"items":         items,
			"totalCalories": total,
		})

	case http.MethodPost:
		var body struct {
			Date     string `json:"date"`
			Type     string `json:"type"`
			Food     string `json:"food"`
			Calories int    `json:"calories"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if body.Date == "" {
			body.Date = localDayString(time.Now())
		}
		rec, err := s.meals.Record(ctx, body.Date, body.Type, body.Food, body.Calories)
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
		s.meals.Delete(ctx, ts)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func timestampQuery(r *http.Request) (int64, error) {
	v := r.URL.Query().Get("timestamp")
	if v == "" {
		return 0, errors.New("timestamp is required")
	}
	ts, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errors.New("timestamp must be an integer")
	}
	return ts, nil
}
