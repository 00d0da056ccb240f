package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "healthlog/internal/adapter/http"
	"healthlog/internal/adapter/sqlite"
	"healthlog/internal/app"
	"healthlog/internal/catalog"
	"healthlog/internal/repository"
	"healthlog/internal/store"
)

func main() {
	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")
	dbPath := env("DB_PATH", "healthlog.db")

	ctx := context.Background()
	logger := log.Default()

	var medium store.Medium
	db, err := sqlite.Open(dbPath)
	if err != nil {
		// The store's probe will catch this too, but there is no medium to
		// hand it; give it one that always fails so it degrades cleanly.
		log.Printf("db open %s: %v", dbPath, err)
		medium = unavailableMedium{err: err}
	} else {
		defer func() { _ = db.Close() }()
		medium = db
	}

	st := store.New(ctx, medium, logger)
	repo := repository.New(st, logger)
	repo.EnsureSeedData(ctx)

	cat := catalog.New()
	weightSvc := app.NewWeightService(repo)
	mealSvc := app.NewMealService(repo)
	exerciseSvc := app.NewExerciseService(repo, cat)
	statsSvc := app.NewStatsService(repo, repo, repo)

	h := adapthttp.New(weightSvc, mealSvc, exerciseSvc, statsSvc, cat, webDir).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// unavailableMedium fails every operation with the open error.
type unavailableMedium struct{ err error }

func (m unavailableMedium) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, m.err
}
func (m unavailableMedium) Set(context.Context, string, []byte) error { return m.err }
func (m unavailableMedium) Delete(context.Context, string) error      { return m.err }

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
