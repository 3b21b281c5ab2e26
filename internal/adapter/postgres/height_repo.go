package postgres

import (
	"context"
	"fmt"

	"nutrilog/internal/domain"
)

// AddHeight inserts a height reading.
func (d *DB) AddHeight(ctx context.Context, r domain.HeightRecord) (*domain.HeightRecord, error) {
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO heights (user_id, date, height, notes) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		r.UserID, r.Date.UTC(), r.Height, r.Notes,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add height: %w", err)
	}
	return &r, nil
}

// ListHeights returns the user's heights, most recent first.
func (d *DB) ListHeights(ctx context.Context, userID int64) ([]domain.HeightRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, date, height, notes, created_at FROM heights WHERE user_id = $1 ORDER BY date DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list heights: %w", err)
	}
	defer rows.Close()

	out := []domain.HeightRecord{}
	for rows.Next() {
		var r domain.HeightRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.Height, &r.Notes, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan height: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DeleteHeight deletes one of the user's height readings.
func (d *DB) DeleteHeight(ctx context.Context, userID, id int64) error {
	return d.execOwned(ctx, "DELETE FROM heights WHERE id = $1 AND user_id = $2", id, userID)
}
