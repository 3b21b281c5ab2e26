package domain

import (
	"context"
	"time"
)

// Height units accepted on a Measurement.
const (
	UnitCM     = "cm"
	UnitInches = "inches"
)

// Measurement is a combined height and weight reading taken on one date.
type Measurement struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Date       time.Time `json:"date"`
	Height     float64   `json:"height"`
	HeightUnit string    `json:"heightUnit"`
	Weight     float64   `json:"weight"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// HeightCM returns the measurement's height normalised to centimetres.
func (m Measurement) HeightCM() float64 {
	return ConvertHeight(m.Height, m.HeightUnit, UnitCM)
}

// MeasurementRepository is the port for combined measurement persistence.
type MeasurementRepository interface {
	CreateMeasurement(ctx context.Context, m Measurement) (*Measurement, error)
	ListMeasurements(ctx context.Context, userID int64) ([]Measurement, error)
	UpdateMeasurement(ctx context.Context, m Measurement) error
	DeleteMeasurement(ctx context.Context, userID, id int64) error
}
