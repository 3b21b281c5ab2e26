package postgres

import (
	"context"
	"fmt"

	"nutrilog/internal/domain"
)

const measurementColumns = "id, user_id, date, height, height_unit, weight, notes, created_at"

func scanMeasurement(s scanner) (*domain.Measurement, error) {
	var m domain.Measurement
	if err := s.Scan(&m.ID, &m.UserID, &m.Date, &m.Height, &m.HeightUnit, &m.Weight, &m.Notes, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMeasurement inserts a combined measurement.
func (d *DB) CreateMeasurement(ctx context.Context, m domain.Measurement) (*domain.Measurement, error) {
	created, err := scanMeasurement(d.sql.QueryRowContext(ctx,
		"INSERT INTO measurements (user_id, date, height, height_unit, weight, notes) VALUES ($1, $2, $3, $4, $5, $6) RETURNING "+measurementColumns,
		m.UserID, m.Date.UTC(), m.Height, m.HeightUnit, m.Weight, m.Notes))
	if err != nil {
		return nil, fmt.Errorf("create measurement: %w", err)
	}
	return created, nil
}

// ListMeasurements returns the user's measurements, most recent first.
func (d *DB) ListMeasurements(ctx context.Context, userID int64) ([]domain.Measurement, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+measurementColumns+" FROM measurements WHERE user_id = $1 ORDER BY date DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	out := []domain.Measurement{}
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// UpdateMeasurement replaces a measurement owned by m.UserID.
func (d *DB) UpdateMeasurement(ctx context.Context, m domain.Measurement) error {
	return d.execOwned(ctx,
		"UPDATE measurements SET date = $1, height = $2, height_unit = $3, weight = $4, notes = $5 WHERE id = $6 AND user_id = $7",
		m.Date.UTC(), m.Height, m.HeightUnit, m.Weight, m.Notes, m.ID, m.UserID)
}

// DeleteMeasurement deletes one of the user's measurements.
func (d *DB) DeleteMeasurement(ctx context.Context, userID, id int64) error {
	return d.execOwned(ctx, "DELETE FROM measurements WHERE id = $1 AND user_id = $2", id, userID)
}
