package domain

import (
	"context"
	"time"
)

// WeightRecord represents a single dated weight reading, stored in kg.
type WeightRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Date      time.Time `json:"date"`
	Weight    float64   `json:"weight"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// WeightRepository is the port for weight persistence. ListWeights returns
// records most recent first: date descending, then newest insert first.
type WeightRepository interface {
	AddWeight(ctx context.Context, r WeightRecord) (*WeightRecord, error)
	ListWeights(ctx context.Context, userID int64) ([]WeightRecord, error)
	DeleteWeight(ctx context.Context, userID, id int64) error
}
