package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nutrilog/internal/domain"
)

// MealLogInput is the payload for creating or replacing a meal log. When
// Calories is nil it is resolved from the user's food named MealName.
type MealLogInput struct {
	Date     time.Time `json:"date" validate:"required"`
	Type     string    `json:"type" validate:"required"`
	MealName string    `json:"mealName" validate:"required"`
	Qty      int       `json:"qty" validate:"gte=0"`
	Calories *float64  `json:"calories" validate:"omitempty,gte=0"`
	Notes    *string   `json:"notes"`
}

// MealLogService encapsulates meal logging use cases.
type MealLogService struct {
	logs  domain.MealLogRepository
	foods domain.FoodRepository
}

// NewMealLogService creates a MealLogService. foods is consulted to resolve
// calories for logs submitted without them.
func NewMealLogService(logs domain.MealLogRepository, foods domain.FoodRepository) *MealLogService {
	return &MealLogService{logs: logs, foods: foods}
}

// Create validates and stores a meal log.
func (s *MealLogService) Create(ctx context.Context, userID int64, in MealLogInput) (*domain.MealLog, error) {
	l, err := s.build(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	return s.logs.CreateMealLog(ctx, l)
}

// Update replaces the meal log id owned by the user.
func (s *MealLogService) Update(ctx context.Context, userID, id int64, in MealLogInput) (*domain.MealLog, error) {
	l, err := s.build(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	l.ID = id
	if err := s.logs.UpdateMealLog(ctx, l); err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns every meal log of the user, most recent first.
func (s *MealLogService) List(ctx context.Context, userID int64) ([]domain.MealLog, error) {
	return s.logs.ListMealLogs(ctx, userID)
}

// Delete removes the meal log id owned by the user.
func (s *MealLogService) Delete(ctx context.Context, userID, id int64) error {
	return s.logs.DeleteMealLog(ctx, userID, id)
}

func (s *MealLogService) build(ctx context.Context, userID int64, in MealLogInput) (domain.MealLog, error) {
	in.Type = strings.TrimSpace(in.Type)
	in.MealName = strings.TrimSpace(in.MealName)
	if err := validateInput(in); err != nil {
		return domain.MealLog{}, err
	}
	if in.Qty == 0 {
		in.Qty = 1
	}

	l := domain.MealLog{
		UserID:   userID,
		Date:     in.Date,
		Type:     in.Type,
		MealName: in.MealName,
		Qty:      in.Qty,
		Notes:    cleanNotes(in.Notes),
	}
	if in.Calories != nil {
		l.Calories = *in.Calories
		return l, nil
	}

	food, err := s.foods.GetFoodByName(ctx, userID, in.MealName)
	if err != nil {
		return domain.MealLog{}, fmt.Errorf("resolve food: %w", err)
	}
	if food == nil {
		return domain.MealLog{}, ErrUnknownFood
	}
	l.Calories = food.CaloriesFor(in.Qty)
	return l, nil
}

func cleanNotes(n *string) *string {
	if n == nil {
		return nil
	}
	v := strings.TrimSpace(*n)
	if v == "" {
		return nil
	}
	return &v
}
