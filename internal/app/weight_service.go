package app

import (
	"context"
	"errors"
	"sort"

	"healthlog/internal/domain"
)

// WeightService encapsulates weight-tracking use cases.
type WeightService struct {
	repo domain.WeightRepository
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.WeightRepository) *WeightService {
	return &WeightService{repo: repo}
}

// Record validates and stores a weight measurement for the given day,
// replacing any earlier measurement for that day. Height may be nil; the
// repository carries the last known height forward.
func (s *WeightService) Record(ctx context.Context, date string, weight float64, height *float64) (domain.WeightRecord, error) {
	if date == "" {
		return domain.WeightRecord{}, errors.New("date is required")
	}
	if weight <= 0 {
		return domain.WeightRecord{}, errors.New("weight must be > 0")
	}
	if height != nil && *height <= 0 {
		return domain.WeightRecord{}, errors.New("height must be > 0")
	}
	rec := domain.WeightRecord{Date: date, Weight: weight, Height: height}
	return s.repo.UpsertWeight(ctx, rec), nil
}

// Delete removes the measurement for date. Deleting an absent date is a
// no-op.
func (s *WeightService) Delete(ctx context.Context, date string) {
	s.repo.DeleteWeight(ctx, date)
}

// List returns all weight records, newest day first.
func (s *WeightService) List(ctx context.Context) []domain.WeightRecord {
	weights := s.repo.Weights(ctx)
	sort.SliceStable(weights, func(i, j int) bool {
		return weights[i].Date > weights[j].Date
	})
	return weights
}
