package domain

import (
	"context"
	"time"
)

// HeightRecord represents a single dated height reading, stored in cm.
type HeightRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Date      time.Time `json:"date"`
	Height    float64   `json:"height"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// HeightRepository is the port for height persistence. ListHeights uses the
// same most-recent-first ordering as WeightRepository.ListWeights.
type HeightRepository interface {
	AddHeight(ctx context.Context, r HeightRecord) (*HeightRecord, error)
	ListHeights(ctx context.Context, userID int64) ([]HeightRecord, error)
	DeleteHeight(ctx context.Context, userID, id int64) error
}
