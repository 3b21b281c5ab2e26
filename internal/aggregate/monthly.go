package aggregate

import (
	"sort"
	"time"

	"nutrilog/internal/domain"

	"github.com/shopspring/decimal"
)

// monthLabels is the display order table for month keys.
var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthLabel returns the abbreviated English name of m, e.g. "Jan".
func MonthLabel(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthLabels[m-1]
}

// MonthlySummary holds calories summed per (month, day of month, category).
// Months are keyed by calendar month only: readings from different years
// share a bucket.
type MonthlySummary struct {
	cells      map[time.Month]map[int]map[string]decimal.Decimal
	categories map[string]struct{}
}

// MonthlySummary builds the month → day → category calorie table.
func (e Engine) MonthlySummary(logs []domain.MealLog) *MonthlySummary {
	s := &MonthlySummary{
		cells:      make(map[time.Month]map[int]map[string]decimal.Decimal),
		categories: make(map[string]struct{}),
	}
	for _, l := range logs {
		if !validMealLog(l) {
			continue
		}
		lt := l.Date.In(e.Location())
		days, ok := s.cells[lt.Month()]
		if !ok {
			days = make(map[int]map[string]decimal.Decimal)
			s.cells[lt.Month()] = days
		}
		cats, ok := days[lt.Day()]
		if !ok {
			cats = make(map[string]decimal.Decimal)
			days[lt.Day()] = cats
		}
		cats[l.Type] = cats[l.Type].Add(decimal.NewFromFloat(l.Calories))
		s.categories[l.Type] = struct{}{}
	}
	return s
}

// Months returns the months present, most recent calendar month first.
func (s *MonthlySummary) Months() []time.Month {
	out := make([]time.Month, 0, len(s.cells))
	for m := range s.cells {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

// Days returns the days of month present in m, highest first.
func (s *MonthlySummary) Days(m time.Month) []int {
	out := make([]int, 0, len(s.cells[m]))
	for d := range s.cells[m] {
		out = append(out, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Categories returns every category seen in any month, ascending.
func (s *MonthlySummary) Categories() []string {
	out := make([]string, 0, len(s.categories))
	for c := range s.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Calories returns the summed calories of one (month, day, category) cell.
func (s *MonthlySummary) Calories(m time.Month, day int, category string) float64 {
	return toFloat(s.cells[m][day][category])
}

// DayTotal sums every category of one day.
func (s *MonthlySummary) DayTotal(m time.Month, day int) float64 {
	return toFloat(s.dayTotal(m, day))
}

// MonthTotal sums every day of one month.
func (s *MonthlySummary) MonthTotal(m time.Month) float64 {
	total := decimal.Zero
	for day := range s.cells[m] {
		total = total.Add(s.dayTotal(m, day))
	}
	return toFloat(total)
}

// CategoryTotal sums one category across every day of a month.
func (s *MonthlySummary) CategoryTotal(m time.Month, category string) float64 {
	total := decimal.Zero
	for _, cats := range s.cells[m] {
		total = total.Add(cats[category])
	}
	return toFloat(total)
}

func (s *MonthlySummary) dayTotal(m time.Month, day int) decimal.Decimal {
	total := decimal.Zero
	for _, v := range s.cells[m][day] {
		total = total.Add(v)
	}
	return total
}

// Map returns the raw nested mapping keyed by month label.
func (s *MonthlySummary) Map() map[string]map[int]map[string]float64 {
	out := make(map[string]map[int]map[string]float64, len(s.cells))
	for m, days := range s.cells {
		dm := make(map[int]map[string]float64, len(days))
		for d, cats := range days {
			cm := make(map[string]float64, len(cats))
			for c, v := range cats {
				cm[c] = toFloat(v)
			}
			dm[d] = cm
		}
		out[MonthLabel(m)] = dm
	}
	return out
}

// SummaryTable is the display-ordered rendering of a MonthlySummary.
type SummaryTable struct {
	Categories []string   `json:"categories"`
	Months     []MonthRow `json:"months"`
}

// MonthRow is one month block of the summary table.
type MonthRow struct {
	Month          string             `json:"month"`
	Days           []DayRow           `json:"days"`
	CategoryTotals map[string]float64 `json:"categoryTotals"`
	Total          float64            `json:"total"`
}

// DayRow is one day line within a month block.
type DayRow struct {
	Day      int                `json:"day"`
	Calories map[string]float64 `json:"calories"`
	Total    float64            `json:"total"`
}

// Table renders the summary in display order with derived totals.
func (s *MonthlySummary) Table() SummaryTable {
	t := SummaryTable{Categories: s.Categories(), Months: []MonthRow{}}
	for _, m := range s.Months() {
		row := MonthRow{
			Month:          MonthLabel(m),
			CategoryTotals: make(map[string]float64),
			Total:          s.MonthTotal(m),
		}
		for _, d := range s.Days(m) {
			cals := make(map[string]float64, len(s.cells[m][d]))
			for c, v := range s.cells[m][d] {
				cals[c] = toFloat(v)
			}
			row.Days = append(row.Days, DayRow{Day: d, Calories: cals, Total: s.DayTotal(m, d)})
		}
		for _, c := range t.Categories {
			if v := s.CategoryTotal(m, c); v > 0 {
				row.CategoryTotals[c] = v
			}
		}
		t.Months = append(t.Months, row)
	}
	return t
}
