package domain

import (
	"context"
	"time"
)

// Meal categories offered by the client. Any other label is accepted and
// treated as a custom category.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

// MealLog is a single recorded eating event with its resolved calories.
type MealLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	MealName  string    `json:"mealName"`
	Qty       int       `json:"qty"`
	Calories  float64   `json:"calories"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// MealLogRepository is the port for meal log persistence. Update and Delete
// return ErrNotFound when no log with that id belongs to the user.
type MealLogRepository interface {
	CreateMealLog(ctx context.Context, l MealLog) (*MealLog, error)
	ListMealLogs(ctx context.Context, userID int64) ([]MealLog, error)
	UpdateMealLog(ctx context.Context, l MealLog) error
	DeleteMealLog(ctx context.Context, userID, id int64) error
}
