package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"nutrilog/internal/domain"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUserRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.Create(ctx, "Ann", "ann@example.com", "hash")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 || u.CreatedAt.IsZero() {
		t.Errorf("expected id and timestamp, got %+v", u)
	}

	if _, err := db.Create(ctx, "Ann 2", "ANN@example.com", "x"); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate email, got %v", err)
	}

	got, err := db.GetByEmail(ctx, "ann@example.com")
	if err != nil || got == nil || got.ID != u.ID {
		t.Fatalf("GetByEmail = %+v, %v", got, err)
	}
	if got, _ := db.GetByID(ctx, u.ID); got == nil || got.Name != "Ann" {
		t.Errorf("GetByID = %+v", got)
	}
	if got, err := db.GetByEmail(ctx, "nobody@example.com"); got != nil || err != nil {
		t.Errorf("expected (nil, nil) for missing user, got %+v, %v", got, err)
	}
}

func TestFoodRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	egg, err := db.CreateFood(ctx, domain.Food{UserID: 1, Name: "Egg", Calories: 78, Unit: "Number", Qty: 1})
	if err != nil {
		t.Fatalf("CreateFood: %v", err)
	}
	if _, err := db.CreateFood(ctx, domain.Food{UserID: 1, Name: "Toast", Calories: 80}); err != nil {
		t.Fatalf("CreateFood: %v", err)
	}
	if _, err := db.CreateFood(ctx, domain.Food{UserID: 1, Name: "Egg"}); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
	if _, err := db.CreateFood(ctx, domain.Food{UserID: 2, Name: "Egg"}); err != nil {
		t.Errorf("same name for another user should be allowed: %v", err)
	}

	foods, _ := db.ListFoods(ctx, 1)
	if len(foods) != 2 || foods[0].Name != "Toast" {
		t.Errorf("expected newest first, got %+v", foods)
	}

	if f, _ := db.GetFoodByName(ctx, 1, "Egg"); f == nil || f.Calories != 78 {
		t.Errorf("GetFoodByName = %+v", f)
	}
	if f, _ := db.GetFoodByName(ctx, 3, "Egg"); f != nil {
		t.Errorf("expected no food for other user, got %+v", f)
	}

	if err := db.DeleteFood(ctx, 2, egg.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting another user's food, got %v", err)
	}
	if err := db.DeleteFood(ctx, 1, egg.ID); err != nil {
		t.Errorf("DeleteFood: %v", err)
	}
}

func TestMealLogRepository(t *testing.T) {
	db := New()
	ctx := context.Background()
	notes := "with jam"

	first, _ := db.CreateMealLog(ctx, domain.MealLog{UserID: 1, Date: date(1, 5), Type: "Breakfast", MealName: "Toast", Qty: 1, Calories: 80, Notes: &notes})
	second, _ := db.CreateMealLog(ctx, domain.MealLog{UserID: 1, Date: date(1, 5), Type: "Lunch", MealName: "Soup", Qty: 1, Calories: 200})
	third, _ := db.CreateMealLog(ctx, domain.MealLog{UserID: 1, Date: date(1, 6), Type: "Dinner", MealName: "Rice", Qty: 2, Calories: 400})
	_, _ = db.CreateMealLog(ctx, domain.MealLog{UserID: 2, Date: date(1, 6), Type: "Dinner", MealName: "Rice", Qty: 1, Calories: 200})

	notes = "mutated"
	logs, err := db.ListMealLogs(ctx, 1)
	if err != nil {
		t.Fatalf("ListMealLogs: %v", err)
	}
	wantOrder := []int64{third.ID, second.ID, first.ID}
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}
	for i, id := range wantOrder {
		if logs[i].ID != id {
			t.Errorf("position %d: got id %d, want %d", i, logs[i].ID, id)
		}
	}
	if logs[2].Notes == nil || *logs[2].Notes != "with jam" {
		t.Errorf("stored notes should be isolated from caller, got %v", logs[2].Notes)
	}

	upd := *second
	upd.Calories = 250
	if err := db.UpdateMealLog(ctx, upd); err != nil {
		t.Fatalf("UpdateMealLog: %v", err)
	}
	upd.UserID = 2
	if err := db.UpdateMealLog(ctx, upd); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound updating another user's log, got %v", err)
	}
	logs, _ = db.ListMealLogs(ctx, 1)
	if logs[1].Calories != 250 || !logs[1].CreatedAt.Equal(second.CreatedAt) {
		t.Errorf("update not applied correctly: %+v", logs[1])
	}

	if err := db.DeleteMealLog(ctx, 1, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := db.DeleteMealLog(ctx, 1, first.ID); err != nil {
		t.Errorf("DeleteMealLog: %v", err)
	}
	if logs, _ := db.ListMealLogs(ctx, 1); len(logs) != 2 {
		t.Errorf("expected 2 logs after delete, got %d", len(logs))
	}
}

func TestWeightAndHeightRepositories(t *testing.T) {
	db := New()
	ctx := context.Background()

	old, _ := db.AddWeight(ctx, domain.WeightRecord{UserID: 1, Date: date(1, 1), Weight: 80})
	_, _ = db.AddWeight(ctx, domain.WeightRecord{UserID: 1, Date: date(1, 10), Weight: 78})

	weights, _ := db.ListWeights(ctx, 1)
	if len(weights) != 2 || weights[0].Weight != 78 {
		t.Errorf("expected most recent first, got %+v", weights)
	}
	if other, _ := db.ListWeights(ctx, 999); len(other) != 0 {
		t.Error("expected 0 weights for other user")
	}
	if err := db.DeleteWeight(ctx, 1, old.ID); err != nil {
		t.Errorf("DeleteWeight: %v", err)
	}
	if err := db.DeleteWeight(ctx, 1, old.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}

	h, _ := db.AddHeight(ctx, domain.HeightRecord{UserID: 1, Date: date(2, 1), Height: 180})
	heights, _ := db.ListHeights(ctx, 1)
	if len(heights) != 1 || heights[0].ID != h.ID {
		t.Errorf("unexpected heights: %+v", heights)
	}
	if err := db.DeleteHeight(ctx, 2, h.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMeasurementRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	m, _ := db.CreateMeasurement(ctx, domain.Measurement{UserID: 1, Date: date(3, 1), Height: 70, HeightUnit: domain.UnitInches, Weight: 80})
	m.Weight = 79
	if err := db.UpdateMeasurement(ctx, *m); err != nil {
		t.Fatalf("UpdateMeasurement: %v", err)
	}
	ms, _ := db.ListMeasurements(ctx, 1)
	if len(ms) != 1 || ms[0].Weight != 79 {
		t.Errorf("unexpected measurements: %+v", ms)
	}
	if err := db.DeleteMeasurement(ctx, 1, m.ID); err != nil {
		t.Errorf("DeleteMeasurement: %v", err)
	}
	if err := db.UpdateMeasurement(ctx, *m); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestConcurrentWrites(t *testing.T) {
	db := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = db.AddWeight(ctx, domain.WeightRecord{UserID: 1, Date: date(1, 1), Weight: 70})
		}()
	}
	wg.Wait()

	weights, _ := db.ListWeights(ctx, 1)
	if len(weights) != 50 {
		t.Fatalf("expected 50 weights, got %d", len(weights))
	}
	seen := map[int64]bool{}
	for _, w := range weights {
		if seen[w.ID] {
			t.Fatalf("duplicate id %d", w.ID)
		}
		seen[w.ID] = true
	}
}
