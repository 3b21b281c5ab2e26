package aggregate

import (
	"sort"
	"time"

	"nutrilog/internal/domain"

	"github.com/shopspring/decimal"
)

// DayGroup holds the meal logs that fall on one calendar day.
type DayGroup struct {
	Day     string           `json:"day"`
	Records []domain.MealLog `json:"records"`
}

// DayTotal is the calorie total of one calendar day.
type DayTotal struct {
	Day           string  `json:"day"`
	TotalCalories float64 `json:"totalCalories"`
}

// CategoryTotal is the calorie total of one meal category.
type CategoryTotal struct {
	Category      string  `json:"category"`
	TotalCalories float64 `json:"totalCalories"`
}

// SummaryStats are the headline numbers of the analytics view.
type SummaryStats struct {
	TotalCalories   float64 `json:"totalCalories"`
	AveragePerDay   float64 `json:"averagePerDay"`
	DaysTracked     int     `json:"daysTracked"`
	PeakDayCalories float64 `json:"peakDayCalories"`
}

type dayBucket struct {
	start time.Time
	label string
	total decimal.Decimal
}

// dayBuckets sums calories per calendar day, in first-seen order.
func (e Engine) dayBuckets(logs []domain.MealLog) []*dayBucket {
	var buckets []*dayBucket
	index := make(map[string]*dayBucket)
	for _, l := range logs {
		if !validMealLog(l) {
			continue
		}
		label := e.DayLabel(l.Date)
		b, ok := index[label]
		if !ok {
			b = &dayBucket{start: e.dayStart(l.Date), label: label}
			index[label] = b
			buckets = append(buckets, b)
		}
		b.total = b.total.Add(decimal.NewFromFloat(l.Calories))
	}
	return buckets
}

// GroupByDay buckets logs by calendar day. Days appear in the order they are
// first seen and each day keeps its records in input order.
func (e Engine) GroupByDay(logs []domain.MealLog) []DayGroup {
	groups := []DayGroup{}
	index := make(map[string]int)
	for _, l := range logs {
		if !validMealLog(l) {
			continue
		}
		day := e.DayLabel(l.Date)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Day: day})
		}
		groups[i].Records = append(groups[i].Records, l)
	}
	return groups
}

// DailyTotals returns one total per distinct day, oldest day first.
func (e Engine) DailyTotals(logs []domain.MealLog) []DayTotal {
	buckets := e.dayBuckets(logs)
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].start.Before(buckets[j].start)
	})

	out := make([]DayTotal, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, DayTotal{Day: b.label, TotalCalories: toFloat(b.total)})
	}
	return out
}

// CategoryBreakdown returns one total per meal category in order of first
// occurrence.
func (e Engine) CategoryBreakdown(logs []domain.MealLog) []CategoryTotal {
	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, l := range logs {
		if !validMealLog(l) {
			continue
		}
		sum, ok := totals[l.Type]
		if !ok {
			order = append(order, l.Type)
		}
		totals[l.Type] = sum.Add(decimal.NewFromFloat(l.Calories))
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryTotal{Category: c, TotalCalories: toFloat(totals[c])})
	}
	return out
}

// SummaryStatistics computes total, per-day average, tracked day count and
// the highest single-day total.
func (e Engine) SummaryStatistics(logs []domain.MealLog) SummaryStats {
	buckets := e.dayBuckets(logs)
	if len(buckets) == 0 {
		return SummaryStats{}
	}

	total := decimal.Zero
	peak := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.total)
		if b.total.GreaterThan(peak) {
			peak = b.total
		}
	}
	avg := total.Div(decimal.NewFromInt(int64(len(buckets))))

	return SummaryStats{
		TotalCalories:   toFloat(total),
		AveragePerDay:   toFloat(avg),
		DaysTracked:     len(buckets),
		PeakDayCalories: toFloat(peak),
	}
}
