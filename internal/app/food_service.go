package app

import (
	"context"
	"errors"
	"strings"

	"nutrilog/internal/domain"
)

// DefaultFoodUnit labels foods created without a unit.
const DefaultFoodUnit = "Number"

// FoodInput is the payload for defining a food.
type FoodInput struct {
	Name     string  `json:"name" validate:"required"`
	Calories float64 `json:"calories" validate:"gte=0"`
	Unit     string  `json:"unit"`
	Qty      int     `json:"qty" validate:"gte=0"`
}

// FoodService encapsulates the user's food catalogue.
type FoodService struct {
	repo domain.FoodRepository
}

// NewFoodService creates a FoodService backed by the given repository.
func NewFoodService(repo domain.FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

// Create validates and stores a new food. Unit defaults to "Number" and qty
// to 1.
func (s *FoodService) Create(ctx context.Context, userID int64, in FoodInput) (*domain.Food, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	f := domain.Food{
		UserID:   userID,
		Name:     in.Name,
		Calories: in.Calories,
		Unit:     strings.TrimSpace(in.Unit),
		Qty:      in.Qty,
	}
	if f.Unit == "" {
		f.Unit = DefaultFoodUnit
	}
	if f.Qty == 0 {
		f.Qty = 1
	}

	created, err := s.repo.CreateFood(ctx, f)
	if errors.Is(err, domain.ErrConflict) {
		return nil, ErrDuplicateFood
	}
	return created, err
}

// List returns the user's foods, newest first.
func (s *FoodService) List(ctx context.Context, userID int64) ([]domain.Food, error) {
	return s.repo.ListFoods(ctx, userID)
}

// Delete removes one of the user's foods. Existing meal logs keep their
// resolved calories.
func (s *FoodService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.DeleteFood(ctx, userID, id)
}
