package adapthttp

import (
	"net/http"
	"time"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	today := dayQuery(r)
	writeJSON(w, http.StatusOK, s.stats.GetDashboard(r.Context(), today))
}

func (s *Server) handleChartWeight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	n := intQuery(r, "n", 7)
	points, err := s.stats.GetWeightSeries(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"n": n, "items": points})
}

func (s *Server) handleChartCalories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	days := intQuery(r, "days", 7)
	today := localDayString(time.Now())
	points, err := s.stats.GetCalorieSeries(r.Context(), days, today)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"days":  days,
		"today": today,
		"items": points,
	})
}
