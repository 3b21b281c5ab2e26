// Package aggregate turns snapshots of a user's dated records into the
// grouped summaries shown on the dashboard: per-day and per-month calorie
// tables, category breakdowns, headline statistics, and weight/height trends.
//
// Every function is pure. Records whose date is the zero time (the result of
// a failed parse upstream) or whose numeric field is negative or not finite
// are skipped and contribute to no sum or count. Empty input produces empty
// or zero results, never an error.
package aggregate

import (
	"math"
	"time"

	"nutrilog/internal/domain"

	"github.com/shopspring/decimal"
)

// DayLayout formats calendar-day labels, e.g. "1/5/2024".
const DayLayout = "1/2/2006"

// Engine computes aggregates in a fixed time zone. The zero value uses
// time.Local.
type Engine struct {
	loc *time.Location
}

// New returns an Engine that derives calendar days and months in loc.
func New(loc *time.Location) Engine {
	return Engine{loc: loc}
}

// Location returns the time zone used for day and month keys.
func (e Engine) Location() *time.Location {
	if e.loc == nil {
		return time.Local
	}
	return e.loc
}

// DayLabel formats t as the calendar day it falls on in the engine's zone.
func (e Engine) DayLabel(t time.Time) string {
	return t.In(e.Location()).Format(DayLayout)
}

func (e Engine) dayStart(t time.Time) time.Time {
	lt := t.In(e.Location())
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, e.Location())
}

func validDate(t time.Time) bool {
	return !t.IsZero()
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func validMealLog(l domain.MealLog) bool {
	return validDate(l.Date) && validAmount(l.Calories)
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
