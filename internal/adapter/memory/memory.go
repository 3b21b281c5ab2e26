// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"nutrilog/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu           sync.Mutex
	users        []*domain.User
	foods        []domain.Food
	mealLogs     []domain.MealLog
	weights      []domain.WeightRecord
	heights      []domain.HeightRecord
	measurements []domain.Measurement

	lastID int64
	now    func() time.Time
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{now: func() time.Time { return time.Now().UTC() }}
}

// Ensure interfaces are met.
var (
	_ domain.UserRepository        = (*DB)(nil)
	_ domain.FoodRepository        = (*DB)(nil)
	_ domain.MealLogRepository     = (*DB)(nil)
	_ domain.WeightRepository      = (*DB)(nil)
	_ domain.HeightRepository      = (*DB)(nil)
	_ domain.MeasurementRepository = (*DB)(nil)
)

// nextID hands out ids from one sequence shared by every table, so a higher
// id always means a later insert. Callers hold mu.
func (db *DB) nextID() int64 {
	db.lastID++
	return db.lastID
}

func cloneNotes(n *string) *string {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}

// byDateDesc orders records most recent first, breaking ties by insert order.
func byDateDesc(ai, aj time.Time, idi, idj int64) bool {
	if !ai.Equal(aj) {
		return ai.After(aj)
	}
	return idi > idj
}

// --- UserRepository ---

// GetByEmail retrieves a user by email.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if strings.EqualFold(u.Email, email) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if strings.EqualFold(u.Email, email) {
			return nil, domain.ErrConflict
		}
	}

	u := &domain.User{
		ID:           db.nextID(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    db.now(),
	}
	db.users = append(db.users, u)
	c := *u
	return &c, nil
}

// --- FoodRepository ---

// CreateFood stores a food, rejecting duplicate names per user.
func (db *DB) CreateFood(ctx context.Context, f domain.Food) (*domain.Food, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, existing := range db.foods {
		if existing.UserID == f.UserID && existing.Name == f.Name {
			return nil, domain.ErrConflict
		}
	}
	f.ID = db.nextID()
	f.CreatedAt = db.now()
	db.foods = append(db.foods, f)
	return &f, nil
}

// ListFoods returns the user's foods, newest first.
func (db *DB) ListFoods(ctx context.Context, userID int64) ([]domain.Food, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := []domain.Food{}
	for _, f := range db.foods {
		if f.UserID == userID {
			result = append(result, f)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// GetFoodByName returns the user's food with the exact name, or nil.
func (db *DB) GetFoodByName(ctx context.Context, userID int64, name string) (*domain.Food, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, f := range db.foods {
		if f.UserID == userID && f.Name == name {
			return &f, nil
		}
	}
	return nil, nil
}

// DeleteFood deletes one of the user's foods.
func (db *DB) DeleteFood(ctx context.Context, userID, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, f := range db.foods {
		if f.ID == id && f.UserID == userID {
			db.foods = append(db.foods[:i], db.foods[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- MealLogRepository ---

// CreateMealLog stores a meal log.
func (db *DB) CreateMealLog(ctx context.Context, l domain.MealLog) (*domain.MealLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l.ID = db.nextID()
	l.CreatedAt = db.now()
	l.Notes = cloneNotes(l.Notes)
	db.mealLogs = append(db.mealLogs, l)
	return &l, nil
}

// ListMealLogs returns the user's meal logs, most recent first.
func (db *DB) ListMealLogs(ctx context.Context, userID int64) ([]domain.MealLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := []domain.MealLog{}
	for _, l := range db.mealLogs {
		if l.UserID == userID {
			l.Notes = cloneNotes(l.Notes)
			result = append(result, l)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return byDateDesc(result[i].Date, result[j].Date, result[i].ID, result[j].ID)
	})
	return result, nil
}

// UpdateMealLog replaces the editable fields of a meal log owned by l.UserID.
func (db *DB) UpdateMealLog(ctx context.Context, l domain.MealLog) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, existing := range db.mealLogs {
		if existing.ID == l.ID && existing.UserID == l.UserID {
			l.CreatedAt = existing.CreatedAt
			l.Notes = cloneNotes(l.Notes)
			db.mealLogs[i] = l
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteMealLog deletes one of the user's meal logs.
func (db *DB) DeleteMealLog(ctx context.Context, userID, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, l := range db.mealLogs {
		if l.ID == id && l.UserID == userID {
			db.mealLogs = append(db.mealLogs[:i], db.mealLogs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- WeightRepository ---

// AddWeight stores a weight reading.
func (db *DB) AddWeight(ctx context.Context, r domain.WeightRecord) (*domain.WeightRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	r.ID = db.nextID()
	r.CreatedAt = db.now()
	r.Notes = cloneNotes(r.Notes)
	db.weights = append(db.weights, r)
	return &r, nil
}

// ListWeights returns the user's weights, most recent first.
func (db *DB) ListWeights(ctx context.Context, userID int64) ([]domain.WeightRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := []domain.WeightRecord{}
	for _, r := range db.weights {
		if r.UserID == userID {
			r.Notes = cloneNotes(r.Notes)
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return byDateDesc(result[i].Date, result[j].Date, result[i].ID, result[j].ID)
	})
	return result, nil
}

// DeleteWeight deletes one of the user's weight readings.
func (db *DB) DeleteWeight(ctx context.Context, userID, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, r := range db.weights {
		if r.ID == id && r.UserID == userID {
			db.weights = append(db.weights[:i], db.weights[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- HeightRepository ---

// AddHeight stores a height reading.
func (db *DB) AddHeight(ctx context.Context, r domain.HeightRecord) (*domain.HeightRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	r.ID = db.nextID()
	r.CreatedAt = db.now()
	r.Notes = cloneNotes(r.Notes)
	db.heights = append(db.heights, r)
	return &r, nil
}

// ListHeights returns the user's heights, most recent first.
func (db *DB) ListHeights(ctx context.Context, userID int64) ([]domain.HeightRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := []domain.HeightRecord{}
	for _, r := range db.heights {
		if r.UserID == userID {
			r.Notes = cloneNotes(r.Notes)
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return byDateDesc(result[i].Date, result[j].Date, result[i].ID, result[j].ID)
	})
	return result, nil
}

// DeleteHeight deletes one of the user's height readings.
func (db *DB) DeleteHeight(ctx context.Context, userID, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, r := range db.heights {
		if r.ID == id && r.UserID == userID {
			db.heights = append(db.heights[:i], db.heights[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- MeasurementRepository ---

// CreateMeasurement stores a combined measurement.
func (db *DB) CreateMeasurement(ctx context.Context, m domain.Measurement) (*domain.Measurement, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	m.ID = db.nextID()
	m.CreatedAt = db.now()
	m.Notes = cloneNotes(m.Notes)
	db.measurements = append(db.measurements, m)
	return &m, nil
}

// ListMeasurements returns the user's measurements, most recent first.
func (db *DB) ListMeasurements(ctx context.Context, userID int64) ([]domain.Measurement, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := []domain.Measurement{}
	for _, m := range db.measurements {
		if m.UserID == userID {
			m.Notes = cloneNotes(m.Notes)
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return byDateDesc(result[i].Date, result[j].Date, result[i].ID, result[j].ID)
	})
	return result, nil
}

// UpdateMeasurement replaces a measurement owned by m.UserID.
func (db *DB) UpdateMeasurement(ctx context.Context, m domain.Measurement) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, existing := range db.measurements {
		if existing.ID == m.ID && existing.UserID == m.UserID {
			m.CreatedAt = existing.CreatedAt
			m.Notes = cloneNotes(m.Notes)
			db.measurements[i] = m
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteMeasurement deletes one of the user's measurements.
func (db *DB) DeleteMeasurement(ctx context.Context, userID, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, m := range db.measurements {
		if m.ID == id && m.UserID == userID {
			db.measurements = append(db.measurements[:i], db.measurements[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
