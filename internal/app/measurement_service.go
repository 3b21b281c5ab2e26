package app

import (
	"context"
	"time"

	"nutrilog/internal/domain"
)

// MeasurementInput is the payload for a combined height and weight reading.
type MeasurementInput struct {
	Date       time.Time `json:"date" validate:"required"`
	Height     float64   `json:"height" validate:"gt=0"`
	HeightUnit string    `json:"heightUnit" validate:"omitempty,oneof=cm inches"`
	Weight     float64   `json:"weight" validate:"gt=0"`
	Notes      *string   `json:"notes"`
}

// MeasurementService encapsulates combined measurement use cases. The height
// unit is stored as entered.
type MeasurementService struct {
	repo domain.MeasurementRepository
}

// NewMeasurementService creates a MeasurementService backed by the given repository.
func NewMeasurementService(repo domain.MeasurementRepository) *MeasurementService {
	return &MeasurementService{repo: repo}
}

// Create validates and stores a measurement.
func (s *MeasurementService) Create(ctx context.Context, userID int64, in MeasurementInput) (*domain.Measurement, error) {
	m, err := buildMeasurement(userID, in)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateMeasurement(ctx, m)
}

// Update replaces the measurement id owned by the user.
func (s *MeasurementService) Update(ctx context.Context, userID, id int64, in MeasurementInput) (*domain.Measurement, error) {
	m, err := buildMeasurement(userID, in)
	if err != nil {
		return nil, err
	}
	m.ID = id
	if err := s.repo.UpdateMeasurement(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns the user's measurements, most recent first.
func (s *MeasurementService) List(ctx context.Context, userID int64) ([]domain.Measurement, error) {
	return s.repo.ListMeasurements(ctx, userID)
}

// Delete removes one of the user's measurements.
func (s *MeasurementService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.DeleteMeasurement(ctx, userID, id)
}

func buildMeasurement(userID int64, in MeasurementInput) (domain.Measurement, error) {
	if err := validateInput(in); err != nil {
		return domain.Measurement{}, err
	}
	if in.HeightUnit == "" {
		in.HeightUnit = domain.UnitCM
	}
	return domain.Measurement{
		UserID:     userID,
		Date:       in.Date,
		Height:     in.Height,
		HeightUnit: in.HeightUnit,
		Weight:     in.Weight,
		Notes:      cleanNotes(in.Notes),
	}, nil
}
