package postgres

import (
	"context"
	"fmt"

	"nutrilog/internal/domain"
)

// AddWeight inserts a weight reading.
func (d *DB) AddWeight(ctx context.Context, r domain.WeightRecord) (*domain.WeightRecord, error) {
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO weights (user_id, date, weight, notes) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		r.UserID, r.Date.UTC(), r.Weight, r.Notes,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add weight: %w", err)
	}
	return &r, nil
}

// ListWeights returns the user's weights, most recent first.
func (d *DB) ListWeights(ctx context.Context, userID int64) ([]domain.WeightRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, date, weight, notes, created_at FROM weights WHERE user_id = $1 ORDER BY date DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}
	defer rows.Close()

	out := []domain.WeightRecord{}
	for rows.Next() {
		var r domain.WeightRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.Weight, &r.Notes, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan weight: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DeleteWeight deletes one of the user's weight readings.
func (d *DB) DeleteWeight(ctx context.Context, userID, id int64) error {
	return d.execOwned(ctx, "DELETE FROM weights WHERE id = $1 AND user_id = $2", id, userID)
}
