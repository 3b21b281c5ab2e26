package app

import (
	"context"
	"time"

	"nutrilog/internal/domain"
)

// WeightInput is the payload for recording a weight. Unit is "kg" (default)
// or "lb"; values are stored in kg.
type WeightInput struct {
	Date   time.Time `json:"date" validate:"required"`
	Weight float64   `json:"weight" validate:"gt=0"`
	Unit   string    `json:"unit" validate:"omitempty,oneof=kg lb"`
	Notes  *string   `json:"notes"`
}

// WeightService encapsulates weight-tracking use cases.
type WeightService struct {
	repo domain.WeightRepository
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.WeightRepository) *WeightService {
	return &WeightService{repo: repo}
}

// Record validates and stores a new weight reading.
func (s *WeightService) Record(ctx context.Context, userID int64, in WeightInput) (*domain.WeightRecord, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	unit := in.Unit
	if unit == "" {
		unit = domain.UnitKg
	}
	return s.repo.AddWeight(ctx, domain.WeightRecord{
		UserID: userID,
		Date:   in.Date,
		Weight: domain.ConvertWeight(in.Weight, unit, domain.UnitKg),
		Notes:  cleanNotes(in.Notes),
	})
}

// List returns the user's weights, most recent first.
func (s *WeightService) List(ctx context.Context, userID int64) ([]domain.WeightRecord, error) {
	return s.repo.ListWeights(ctx, userID)
}

// Delete removes one of the user's weight readings.
func (s *WeightService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.DeleteWeight(ctx, userID, id)
}
