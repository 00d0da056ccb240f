package adapthttp

import (
	"errors"
	"net/http"
	"time"
)

func (s *Server) handleWeights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"items": s.weights.List(ctx)})

	case http.MethodPut, http.MethodPost:
		var body struct {
			Date   string   `json:"date"`
			Weight float64  `json:"weight"`
			Height *float64 `json:"height"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if body.Date == "" {
			body.Date = localDayString(time.Now())
		}
		rec, err := s.weights.Record(ctx, body.Date, body.Weight, body.Height)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"entry": rec})

	case http.MethodDelete:
		date := r.URL.Query().Get("date")
		if date == "" {
			writeError(w, http.StatusBadRequest, errors.New("date is required"))
			return
		}
		s.weights.Delete(ctx, date)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
