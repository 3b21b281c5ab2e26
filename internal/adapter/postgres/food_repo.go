package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nutrilog/internal/domain"
)

const foodColumns = "id, user_id, name, calories, unit, qty, created_at"

func scanFood(s scanner) (*domain.Food, error) {
	var f domain.Food
	if err := s.Scan(&f.ID, &f.UserID, &f.Name, &f.Calories, &f.Unit, &f.Qty, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateFood inserts a food, returning domain.ErrConflict on a duplicate name.
func (d *DB) CreateFood(ctx context.Context, f domain.Food) (*domain.Food, error) {
	created, err := scanFood(d.sql.QueryRowContext(ctx,
		"INSERT INTO foods (user_id, name, calories, unit, qty) VALUES ($1, $2, $3, $4, $5) RETURNING "+foodColumns,
		f.UserID, f.Name, f.Calories, f.Unit, f.Qty))
	if isUniqueViolation(err) {
		return nil, domain.ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}
	return created, nil
}

// ListFoods returns the user's foods, newest first.
func (d *DB) ListFoods(ctx context.Context, userID int64) ([]domain.Food, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+foodColumns+" FROM foods WHERE user_id = $1 ORDER BY created_at DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	out := []domain.Food{}
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

// GetFoodByName returns the user's food with the exact name, or nil.
func (d *DB) GetFoodByName(ctx context.Context, userID int64, name string) (*domain.Food, error) {
	f, err := scanFood(d.sql.QueryRowContext(ctx,
		"SELECT "+foodColumns+" FROM foods WHERE user_id = $1 AND name = $2", userID, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}
	return f, nil
}

// DeleteFood deletes one of the user's foods.
func (d *DB) DeleteFood(ctx context.Context, userID, id int64) error {
	return d.execOwned(ctx, "DELETE FROM foods WHERE id = $1 AND user_id = $2", id, userID)
}
