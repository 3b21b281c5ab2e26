package app_test

import (
	"context"

	"nutrilog/internal/domain"
)

type mockFoodRepo struct {
	createFn    func(ctx context.Context, f domain.Food) (*domain.Food, error)
	listFn      func(ctx context.Context, userID int64) ([]domain.Food, error)
	getByNameFn func(ctx context.Context, userID int64, name string) (*domain.Food, error)
	deleteFn    func(ctx context.Context, userID, id int64) error
}

func (m *mockFoodRepo) CreateFood(ctx context.Context, f domain.Food) (*domain.Food, error) {
	if m.createFn != nil {
		return m.createFn(ctx, f)
	}
	f.ID = 1
	return &f, nil
}

func (m *mockFoodRepo) ListFoods(ctx context.Context, userID int64) ([]domain.Food, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFoodRepo) GetFoodByName(ctx context.Context, userID int64, name string) (*domain.Food, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, userID, name)
	}
	return nil, nil
}

func (m *mockFoodRepo) DeleteFood(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

type mockMealLogRepo struct {
	createFn func(ctx context.Context, l domain.MealLog) (*domain.MealLog, error)
	listFn   func(ctx context.Context, userID int64) ([]domain.MealLog, error)
	updateFn func(ctx context.Context, l domain.MealLog) error
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (m *mockMealLogRepo) CreateMealLog(ctx context.Context, l domain.MealLog) (*domain.MealLog, error) {
	if m.createFn != nil {
		return m.createFn(ctx, l)
	}
	l.ID = 1
	return &l, nil
}

func (m *mockMealLogRepo) ListMealLogs(ctx context.Context, userID int64) ([]domain.MealLog, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockMealLogRepo) UpdateMealLog(ctx context.Context, l domain.MealLog) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, l)
	}
	return nil
}

func (m *mockMealLogRepo) DeleteMealLog(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

type mockWeightRepo struct {
	addFn    func(ctx context.Context, r domain.WeightRecord) (*domain.WeightRecord, error)
	listFn   func(ctx context.Context, userID int64) ([]domain.WeightRecord, error)
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (m *mockWeightRepo) AddWeight(ctx context.Context, r domain.WeightRecord) (*domain.WeightRecord, error) {
	if m.addFn != nil {
		return m.addFn(ctx, r)
	}
	r.ID = 1
	return &r, nil
}

func (m *mockWeightRepo) ListWeights(ctx context.Context, userID int64) ([]domain.WeightRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockWeightRepo) DeleteWeight(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

type mockHeightRepo struct {
	addFn    func(ctx context.Context, r domain.HeightRecord) (*domain.HeightRecord, error)
	listFn   func(ctx context.Context, userID int64) ([]domain.HeightRecord, error)
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (m *mockHeightRepo) AddHeight(ctx context.Context, r domain.HeightRecord) (*domain.HeightRecord, error) {
	if m.addFn != nil {
		return m.addFn(ctx, r)
	}
	r.ID = 1
	return &r, nil
}

func (m *mockHeightRepo) ListHeights(ctx context.Context, userID int64) ([]domain.HeightRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockHeightRepo) DeleteHeight(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

type mockMeasurementRepo struct {
	createFn func(ctx context.Context, m domain.Measurement) (*domain.Measurement, error)
	listFn   func(ctx context.Context, userID int64) ([]domain.Measurement, error)
	updateFn func(ctx context.Context, m domain.Measurement) error
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (m *mockMeasurementRepo) CreateMeasurement(ctx context.Context, ms domain.Measurement) (*domain.Measurement, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ms)
	}
	ms.ID = 1
	return &ms, nil
}

func (m *mockMeasurementRepo) ListMeasurements(ctx context.Context, userID int64) ([]domain.Measurement, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockMeasurementRepo) UpdateMeasurement(ctx context.Context, ms domain.Measurement) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, ms)
	}
	return nil
}

func (m *mockMeasurementRepo) DeleteMeasurement(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}
