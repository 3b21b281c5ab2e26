package domain

import (
	"context"
	"time"
)

// Food is a reusable named food with a fixed per-unit calorie value.
type Food struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Unit      string    `json:"unit"`
	Qty       int       `json:"qty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CaloriesFor returns the calorie total for qty units of the food.
func (f Food) CaloriesFor(qty int) float64 {
	return f.Calories * float64(qty)
}

// FoodRepository is the port for food persistence. Names are unique per
// user; Create returns ErrConflict on a duplicate.
type FoodRepository interface {
	CreateFood(ctx context.Context, f Food) (*Food, error)
	ListFoods(ctx context.Context, userID int64) ([]Food, error)
	GetFoodByName(ctx context.Context, userID int64, name string) (*Food, error)
	DeleteFood(ctx context.Context, userID, id int64) error
}
