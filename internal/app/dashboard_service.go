package app

import (
	"context"
	"fmt"

	"nutrilog/internal/aggregate"
	"nutrilog/internal/domain"

	"golang.org/x/sync/errgroup"
)

// DashboardService assembles the aggregated dashboard view from snapshots of
// one user's records.
type DashboardService struct {
	logs         domain.MealLogRepository
	weights      domain.WeightRepository
	heights      domain.HeightRepository
	measurements domain.MeasurementRepository
	engine       aggregate.Engine
}

// NewDashboardService creates a DashboardService. engine fixes the time zone
// used for day and month keys.
func NewDashboardService(
	logs domain.MealLogRepository,
	weights domain.WeightRepository,
	heights domain.HeightRepository,
	measurements domain.MeasurementRepository,
	engine aggregate.Engine,
) *DashboardService {
	return &DashboardService{
		logs:         logs,
		weights:      weights,
		heights:      heights,
		measurements: measurements,
		engine:       engine,
	}
}

// Trend is a chart series together with its range statistics. Stats is nil
// when the series has no usable reading.
type Trend struct {
	Unit   string                 `json:"unit"`
	Points []aggregate.TrendPoint `json:"points"`
	Stats  *aggregate.RangeStats  `json:"stats"`
}

// Dashboard is the full aggregation snapshot.
type Dashboard struct {
	Summary           aggregate.SummaryStats    `json:"summary"`
	DailyTotals       []aggregate.DayTotal      `json:"dailyTotals"`
	CategoryBreakdown []aggregate.CategoryTotal `json:"categoryBreakdown"`
	Monthly           aggregate.SummaryTable    `json:"monthlySummary"`
	Weight            Trend                     `json:"weight"`
	Height            Trend                     `json:"height"`
	MeasuredWeight    Trend                     `json:"measuredWeight"`
	MeasuredHeight    Trend                     `json:"measuredHeight"`
}

type snapshot struct {
	logs         []domain.MealLog
	weights      []domain.WeightRecord
	heights      []domain.HeightRecord
	measurements []domain.Measurement
}

// fetch loads every record list in parallel, cancelling the others on the
// first failure.
func (s *DashboardService) fetch(ctx context.Context, userID int64) (*snapshot, error) {
	var snap snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.logs, err = s.logs.ListMealLogs(ctx, userID)
		return wrapFetch("meal logs", err)
	})
	g.Go(func() (err error) {
		snap.weights, err = s.weights.ListWeights(ctx, userID)
		return wrapFetch("weights", err)
	})
	g.Go(func() (err error) {
		snap.heights, err = s.heights.ListHeights(ctx, userID)
		return wrapFetch("heights", err)
	})
	g.Go(func() (err error) {
		snap.measurements, err = s.measurements.ListMeasurements(ctx, userID)
		return wrapFetch("measurements", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func wrapFetch(what string, err error) error {
	if err != nil {
		return fmt.Errorf("fetch %s: %w", what, err)
	}
	return nil
}

// Get builds the dashboard. weightUnit is "kg" (default) or "lb" and applies
// to every weight series.
func (s *DashboardService) Get(ctx context.Context, userID int64, weightUnit string) (*Dashboard, error) {
	if weightUnit == "" {
		weightUnit = domain.UnitKg
	}
	if weightUnit != domain.UnitKg && weightUnit != domain.UnitLb {
		return nil, invalid("unit", "oneof")
	}

	snap, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	e := s.engine
	return &Dashboard{
		Summary:           e.SummaryStatistics(snap.logs),
		DailyTotals:       e.DailyTotals(snap.logs),
		CategoryBreakdown: e.CategoryBreakdown(snap.logs),
		Monthly:           e.MonthlySummary(snap.logs).Table(),
		Weight:            s.trend(toUnit(aggregate.WeightReadings(snap.weights), weightUnit), weightUnit),
		Height:            s.trend(aggregate.HeightReadings(snap.heights), domain.UnitCM),
		MeasuredWeight:    s.trend(toUnit(aggregate.MeasurementReadings(snap.measurements, aggregate.FieldWeight), weightUnit), weightUnit),
		MeasuredHeight:    s.trend(aggregate.MeasurementReadings(snap.measurements, aggregate.FieldHeight), domain.UnitCM),
	}, nil
}

// DailyLog returns the user's meal logs grouped by day, most recent day first.
func (s *DashboardService) DailyLog(ctx context.Context, userID int64) ([]aggregate.DayGroup, error) {
	logs, err := s.logs.ListMealLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.engine.GroupByDay(logs), nil
}

func (s *DashboardService) trend(readings []aggregate.Reading, unit string) Trend {
	t := Trend{Unit: unit, Points: s.engine.TrendSeries(readings)}
	if st, ok := s.engine.RangeStatistics(readings); ok {
		t.Stats = &st
	}
	return t
}

// toUnit converts kg readings to unit in place.
func toUnit(rs []aggregate.Reading, unit string) []aggregate.Reading {
	if unit == domain.UnitKg {
		return rs
	}
	for i := range rs {
		rs[i].Value = domain.ConvertWeight(rs[i].Value, domain.UnitKg, unit)
	}
	return rs
}
