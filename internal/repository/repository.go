// Package repository implements typed CRUD over the three record collections
// on top of the persistence store.
//
// Every mutation re-serializes and writes the whole affected collection
// (write-through). There are no partial writes, so a failed durable write can
// never leave a half-updated collection behind.
package repository

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"healthlog/internal/domain"
	"healthlog/internal/store"
)

// Persisted collection keys.
const (
	keyWeights   = "weights"
	keyMeals     = "meals"
	keyExercises = "exercises"
)

// Repository owns the weights, meals, and exercises collections. The store
// holds only serialized copies and never interprets record shape.
//
// Storage faults are absorbed below this layer, so mutation and snapshot
// methods return no error; callers validate input before calling them.
type Repository struct {
	mu     sync.Mutex
	store  *store.Store
	log    *log.Logger
	lastID int64 // last identity handed out, for monotonicity
}

var (
	_ domain.WeightRepository   = (*Repository)(nil)
	_ domain.MealRepository     = (*Repository)(nil)
	_ domain.ExerciseRepository = (*Repository)(nil)
)

// New creates a Repository backed by the given store.
func New(st *store.Store, logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.Default()
	}
	return &Repository{store: st, log: logger}
}

// nextID returns a millisecond-scale identity that is strictly increasing
// within the process. Wall-clock collisions in sub-millisecond bursts are
// resolved by bumping past the last value. Callers must hold r.mu.
func (r *Repository) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

// load decodes the collection stored under key into dst (a pointer to a
// slice). A missing payload or one that no longer parses yields an empty
// collection; stored-shape mismatch must never crash the process.
func (r *Repository) load(ctx context.Context, key string, dst any) {
	raw, ok := r.store.Read(ctx, key)
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		r.log.Printf("repository: stored %q is unreadable, treating as empty: %v", key, err)
	}
}

// persist serializes the full collection and writes it through to the store.
func (r *Repository) persist(ctx context.Context, key string, collection any) {
	raw, err := json.Marshal(collection)
	if err != nil {
		// Record types contain only plain fields; this cannot happen for
		// values that entered through the typed API.
		r.log.Printf("repository: encode %q: %v", key, err)
		return
	}
	r.store.Write(ctx, key, raw)
}

func (r *Repository) loadWeights(ctx context.Context) []domain.WeightRecord {
	var weights []domain.WeightRecord
	r.load(ctx, keyWeights, &weights)
	return weights
}

func (r *Repository) loadMeals(ctx context.Context) []domain.MealRecord {
	var meals []domain.MealRecord
	r.load(ctx, keyMeals, &meals)
	return meals
}

func (r *Repository) loadExercises(ctx context.Context) []domain.ExerciseRecord {
	var exercises []domain.ExerciseRecord
	r.load(ctx, keyExercises, &exercises)
	return exercises
}

// --- WeightRepository ---

// Weights returns a snapshot of the weights collection in insertion order.
// The returned slice is the caller's to keep; mutating it does not persist.
func (r *Repository) Weights(ctx context.Context) []domain.WeightRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadWeights(ctx)
}

// UpsertWeight stores rec, replacing any existing record for the same date in
// place. When rec carries no height, the most recent prior height is carried
// forward. Returns the record as stored.
func (r *Repository) UpsertWeight(ctx context.Context, rec domain.WeightRecord) domain.WeightRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	weights := r.loadWeights(ctx)

	if rec.Height == nil {
		if h, ok := lastKnownHeight(weights); ok {
			rec.Height = domain.Float64Ptr(h)
		}
	}

	replaced := false
	for i := range weights {
		if weights[i].Date == rec.Date {
			weights[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		weights = append(weights, rec)
	}

	r.persist(ctx, keyWeights, weights)
	return rec
}

// DeleteWeight removes the record for date. No-op when absent.
func (r *Repository) DeleteWeight(ctx context.Context, date string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	weights := r.loadWeights(ctx)
	kept := weights[:0]
	for _, w := range weights {
		if w.Date != date {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(weights) {
		return
	}
	r.persist(ctx, keyWeights, kept)
}

// LastKnownHeight scans the weight history newest to oldest and returns the
// first recorded height.
func (r *Repository) LastKnownHeight(ctx context.Context) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lastKnownHeight(r.loadWeights(ctx))
}

func lastKnownHeight(weights []domain.WeightRecord) (float64, bool) {
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i].Height != nil {
			return *weights[i].Height, true
		}
	}
	return 0, false
}

// --- MealRepository ---

// Meals returns a snapshot of the meals collection in insertion order.
func (r *Repository) Meals(ctx context.Context) []domain.MealRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadMeals(ctx)
}

// AppendMeal assigns rec its identity and appends it. Multiple meals per day
// are expected; nothing is deduplicated. Returns the record as stored.
func (r *Repository) AppendMeal(ctx context.Context, rec domain.MealRecord) domain.MealRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.CreatedAt = r.nextID()
	meals := append(r.loadMeals(ctx), rec)
	r.persist(ctx, keyMeals, meals)
	return rec
}

// DeleteMeal removes the single meal whose identity matches createdAt.
// No-op when absent.
func (r *Repository) DeleteMeal(ctx context.Context, createdAt int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meals := r.loadMeals(ctx)
	for i, m := range meals {
		if m.CreatedAt == createdAt {
			meals = append(meals[:i], meals[i+1:]...)
			r.persist(ctx, keyMeals, meals)
			return
		}
	}
}

// --- ExerciseRepository ---

// Exercises returns a snapshot of the exercises collection in insertion order.
func (r *Repository) Exercises(ctx context.Context) []domain.ExerciseRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadExercises(ctx)
}

// AppendExercise assigns rec its identity and appends it. Returns the record
// as stored.
func (r *Repository) AppendExercise(ctx context.Context, rec domain.ExerciseRecord) domain.ExerciseRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.CreatedAt = r.nextID()
	exercises := append(r.loadExercises(ctx), rec)
	r.persist(ctx, keyExercises, exercises)
	return rec
}

// DeleteExercise removes the single exercise whose identity matches
// createdAt. No-op when absent.
func (r *Repository) DeleteExercise(ctx context.Context, createdAt int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exercises := r.loadExercises(ctx)
	for i, e := range exercises {
		if e.CreatedAt == createdAt {
			exercises = append(exercises[:i], exercises[i+1:]...)
			r.persist(ctx, keyExercises, exercises)
			return
		}
	}
}
