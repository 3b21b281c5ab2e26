package postgres

import (
	"context"
	"fmt"

	"nutrilog/internal/domain"
)

const mealLogColumns = "id, user_id, date, type, meal_name, qty, calories, notes, created_at"

func scanMealLog(s scanner) (*domain.MealLog, error) {
	var l domain.MealLog
	if err := s.Scan(&l.ID, &l.UserID, &l.Date, &l.Type, &l.MealName, &l.Qty, &l.Calories, &l.Notes, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateMealLog inserts a meal log.
func (d *DB) CreateMealLog(ctx context.Context, l domain.MealLog) (*domain.MealLog, error) {
	created, err := scanMealLog(d.sql.QueryRowContext(ctx,
		"INSERT INTO meal_logs (user_id, date, type, meal_name, qty, calories, notes) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING "+mealLogColumns,
		l.UserID, l.Date.UTC(), l.Type, l.MealName, l.Qty, l.Calories, l.Notes))
	if err != nil {
		return nil, fmt.Errorf("create meal log: %w", err)
	}
	return created, nil
}

// ListMealLogs returns the user's meal logs, most recent first.
func (d *DB) ListMealLogs(ctx context.Context, userID int64) ([]domain.MealLog, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+mealLogColumns+" FROM meal_logs WHERE user_id = $1 ORDER BY date DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list meal logs: %w", err)
	}
	defer rows.Close()

	out := []domain.MealLog{}
	for rows.Next() {
		l, err := scanMealLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal log: %w", err)
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

// UpdateMealLog replaces the editable fields of a meal log owned by l.UserID.
func (d *DB) UpdateMealLog(ctx context.Context, l domain.MealLog) error {
	return d.execOwned(ctx,
		"UPDATE meal_logs SET date = $1, type = $2, meal_name = $3, qty = $4, calories = $5, notes = $6 WHERE id = $7 AND user_id = $8",
		l.Date.UTC(), l.Type, l.MealName, l.Qty, l.Calories, l.Notes, l.ID, l.UserID)
}

// DeleteMealLog deletes one of the user's meal logs.
func (d *DB) DeleteMealLog(ctx context.Context, userID, id int64) error {
	return d.execOwned(ctx, "DELETE FROM meal_logs WHERE id = $1 AND user_id = $2", id, userID)
}
