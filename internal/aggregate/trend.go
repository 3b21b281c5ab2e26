package aggregate

import (
	"sort"
	"time"

	"nutrilog/internal/domain"

	"github.com/shopspring/decimal"
)

// Reading is one dated numeric sample of a body metric.
type Reading struct {
	Date  time.Time
	Value float64
}

// Field selects which value of a combined Measurement becomes a Reading.
type Field string

// Measurement fields.
const (
	FieldWeight Field = "weight"
	FieldHeight Field = "height"
)

// WeightReadings projects weight records onto readings, preserving order.
func WeightReadings(rs []domain.WeightRecord) []Reading {
	out := make([]Reading, 0, len(rs))
	for _, r := range rs {
		out = append(out, Reading{Date: r.Date, Value: r.Weight})
	}
	return out
}

// HeightReadings projects height records onto readings, preserving order.
func HeightReadings(rs []domain.HeightRecord) []Reading {
	out := make([]Reading, 0, len(rs))
	for _, r := range rs {
		out = append(out, Reading{Date: r.Date, Value: r.Height})
	}
	return out
}

// MeasurementReadings projects one field of each measurement onto readings.
// Heights are normalised to centimetres.
func MeasurementReadings(ms []domain.Measurement, f Field) []Reading {
	out := make([]Reading, 0, len(ms))
	for _, m := range ms {
		r := Reading{Date: m.Date}
		switch f {
		case FieldWeight:
			r.Value = m.Weight
		case FieldHeight:
			r.Value = m.HeightCM()
		default:
			continue
		}
		out = append(out, r)
	}
	return out
}

// TrendPoint is one chart point of a trend line.
type TrendPoint struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

// TrendSeries sorts readings oldest first and labels each with its day.
// Several readings on the same day are all kept, in input order.
func (e Engine) TrendSeries(readings []Reading) []TrendPoint {
	valid := make([]Reading, 0, len(readings))
	for _, r := range readings {
		if validDate(r.Date) && validAmount(r.Value) {
			valid = append(valid, r)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.Before(valid[j].Date)
	})

	out := make([]TrendPoint, 0, len(valid))
	for _, r := range valid {
		out = append(out, TrendPoint{Day: e.DayLabel(r.Date), Value: r.Value})
	}
	return out
}

// RangeStats summarises a series of readings.
type RangeStats struct {
	Current float64 `json:"current"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// RangeStatistics computes current, min, max and mean over readings.
//
// readings must be ordered most recent first, which is the order every
// repository List method returns; Current is the first valid reading. The
// boolean is false when no reading is valid.
func (e Engine) RangeStatistics(readings []Reading) (RangeStats, bool) {
	var (
		st    RangeStats
		sum   = decimal.Zero
		count int64
	)
	for _, r := range readings {
		if !validDate(r.Date) || !validAmount(r.Value) {
			continue
		}
		if count == 0 {
			st.Current, st.Min, st.Max = r.Value, r.Value, r.Value
		}
		st.Min = min(st.Min, r.Value)
		st.Max = max(st.Max, r.Value)
		sum = sum.Add(decimal.NewFromFloat(r.Value))
		count++
	}
	if count == 0 {
		return RangeStats{}, false
	}
	st.Average = toFloat(sum.Div(decimal.NewFromInt(count)))
	return st, true
}
