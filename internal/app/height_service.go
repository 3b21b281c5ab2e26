package app

import (
	"context"
	"time"

	"nutrilog/internal/domain"
)

// HeightInput is the payload for recording a height. Unit is "cm" (default)
// or "inches"; values are stored in cm.
type HeightInput struct {
	Date   time.Time `json:"date" validate:"required"`
	Height float64   `json:"height" validate:"gt=0"`
	Unit   string    `json:"unit" validate:"omitempty,oneof=cm inches"`
	Notes  *string   `json:"notes"`
}

// HeightService encapsulates height-tracking use cases.
type HeightService struct {
	repo domain.HeightRepository
}

// NewHeightService creates a HeightService backed by the given repository.
func NewHeightService(repo domain.HeightRepository) *HeightService {
	return &HeightService{repo: repo}
}

// Record validates and stores a new height reading.
func (s *HeightService) Record(ctx context.Context, userID int64, in HeightInput) (*domain.HeightRecord, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	unit := in.Unit
	if unit == "" {
		unit = domain.UnitCM
	}
	return s.repo.AddHeight(ctx, domain.HeightRecord{
		UserID: userID,
		Date:   in.Date,
		Height: domain.ConvertHeight(in.Height, unit, domain.UnitCM),
		Notes:  cleanNotes(in.Notes),
	})
}

// List returns the user's heights, most recent first.
func (s *HeightService) List(ctx context.Context, userID int64) ([]domain.HeightRecord, error) {
	return s.repo.ListHeights(ctx, userID)
}

// Delete removes one of the user's height readings.
func (s *HeightService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.DeleteHeight(ctx, userID, id)
}
