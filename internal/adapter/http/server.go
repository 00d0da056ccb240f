package adapthttp

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"healthlog/internal/app"
	"healthlog/internal/catalog"
)

// Server is the driving HTTP adapter that routes requests to application
// services. It owns everything the core does not: request parsing, resolving
// "today" from the wall clock, and rendering.
type Server struct {
	weights   *app.WeightService
	meals     *app.MealService
	exercises *app.ExerciseService
	stats     *app.StatsService
	catalog   *catalog.Catalog
	webDir    string
}

// New creates a Server wired to the given application services.
func New(ws *app.WeightService, ms *app.MealService, es *app.ExerciseService, ss *app.StatsService, cat *catalog.Catalog, webDir string) *Server {
	return &Server{weights: ws, meals: ms, exercises: es, stats: ss, catalog: cat, webDir: webDir}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/weights", s.handleWeights)

	api.HandleFunc("/meals", s.handleMeals)

	api.HandleFunc("/exercises", s.handleExercises)
	api.HandleFunc("/exercises/suggest", s.handleExerciseSuggest)

	api.HandleFunc("/dashboard", s.handleDashboard)
	api.HandleFunc("/charts/weight", s.handleChartWeight)
	api.HandleFunc("/charts/calories", s.handleChartCalories)

	api.HandleFunc("/catalog/foods", s.handleCatalogFoods)
	api.HandleFunc("/catalog/exercises", s.handleCatalogExercises)
	api.HandleFunc("/foods/suggest", s.handleFoodSuggest)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/metrics", promhttp.Handler())
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
