// Package analytics computes the dashboard aggregates over employee rows.
package analytics

import (
	"math"

	"github.com/irisdrone/tracker/models"
)

// DefaultRange is echoed by reports that do not name a range.
const DefaultRange = "today"

// weekdays covered by a report's daily breakdown.
var weekdays = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Productivity is the team-wide summary.
type Productivity struct {
	TotalEmployees  int     `json:"total_employees"`
	ActiveEmployees int     `json:"active_employees"`
	AvgProductivity float64 `json:"avg_productivity"`
	TotalWorkHours  float64 `json:"total_work_hours"`
}

// DayBreakdown is one weekday of a report.
type DayBreakdown struct {
	Day          string  `json:"day"`
	Active       float64 `json:"active"`
	Idle         float64 `json:"idle"`
	Productivity float64 `json:"productivity"`
}

// Report aggregates hours and productivity over a set of employees.
type Report struct {
	Range          interface{}    `json:"range"`
	TotalHours     float64        `json:"total_hours"`
	ActiveHours    float64        `json:"active_hours"`
	IdleHours      float64        `json:"idle_hours"`
	Productivity   float64        `json:"productivity"`
	DailyBreakdown []DayBreakdown `json:"daily_breakdown"`
}

// Summarize counts active employees, averages productivity and sums active time.
func Summarize(employees []models.Employee) Productivity {
	active := 0
	var hours float64
	for _, e := range employees {
		if e.Status == models.StatusActive {
			active++
		}
		hours += e.ActiveTime
	}

	return Productivity{
		TotalEmployees:  len(employees),
		ActiveEmployees: active,
		AvgProductivity: Round1(meanProductivity(employees)),
		TotalWorkHours:  Round1(hours),
	}
}

// BuildReport aggregates employees for a report over rangeLabel.
//
// The daily breakdown is not real per-day data. Each weekday receives a fifth
// of the totals, because usage is only stored as aggregates.
func BuildReport(employees []models.Employee, rangeLabel interface{}) Report {
	var total, idle float64
	for _, e := range employees {
		total += e.ActiveTime
		idle += e.IdleTime
	}
	productivity := Round1(meanProductivity(employees))

	days := make([]DayBreakdown, len(weekdays))
	for i, day := range weekdays {
		days[i] = DayBreakdown{
			Day:          day,
			Active:       Round1(total / float64(len(weekdays))),
			Idle:         Round1(idle / float64(len(weekdays))),
			Productivity: productivity,
		}
	}

	return Report{
		Range:          rangeLabel,
		TotalHours:     Round1(total),
		ActiveHours:    Round1(total - idle),
		IdleHours:      Round1(idle),
		Productivity:   productivity,
		DailyBreakdown: days,
	}
}

// meanProductivity is 0 for an empty set.
func meanProductivity(employees []models.Employee) float64 {
	if len(employees) == 0 {
		return 0
	}
	sum := 0
	for _, e := range employees {
		sum += e.Productivity
	}
	return float64(sum) / float64(len(employees))
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
