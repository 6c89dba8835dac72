package analytics

import (
	"testing"

	"github.com/irisdrone/tracker/models"
)

func seedEmployees() []models.Employee {
	return []models.Employee{
		{ID: 1, Name: "Sarah Johnson", Status: models.StatusActive, ActiveTime: 6.5, IdleTime: 0.5, Productivity: 92},
		{ID: 2, Name: "Michael Chen", Status: models.StatusIdle, ActiveTime: 5.8, IdleTime: 1.2, Productivity: 78},
		{ID: 3, Name: "Emily Davis", Status: models.StatusActive, ActiveTime: 6.2, IdleTime: 0.8, Productivity: 88},
		{ID: 4, Name: "James Wilson", Status: models.StatusActive, ActiveTime: 7.1, IdleTime: 0.4, Productivity: 95},
		{ID: 5, Name: "Lisa Brown", Status: models.StatusOffline, ActiveTime: 4.5, IdleTime: 0.5, Productivity: 65},
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(seedEmployees())
	want := Productivity{
		TotalEmployees:  5,
		ActiveEmployees: 3,
		AvgProductivity: 83.6,
		TotalWorkHours:  30.1,
	}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got != (Productivity{}) {
		t.Errorf("Summarize(nil) = %+v, want zero value", got)
	}
}

func TestBuildReport(t *testing.T) {
	r := BuildReport(seedEmployees(), DefaultRange)

	if r.Range != "today" {
		t.Errorf("Range = %v, want today", r.Range)
	}
	if r.TotalHours != 30.1 {
		t.Errorf("TotalHours = %v, want 30.1", r.TotalHours)
	}
	if r.IdleHours != 3.4 {
		t.Errorf("IdleHours = %v, want 3.4", r.IdleHours)
	}
	if r.ActiveHours != 26.7 {
		t.Errorf("ActiveHours = %v, want 26.7", r.ActiveHours)
	}
	if r.Productivity != 83.6 {
		t.Errorf("Productivity = %v, want 83.6", r.Productivity)
	}

	if len(r.DailyBreakdown) != 5 {
		t.Fatalf("DailyBreakdown has %d entries, want 5", len(r.DailyBreakdown))
	}
	wantActive := Round1(r.TotalHours / 5)
	for i, day := range r.DailyBreakdown {
		if day.Day != weekdays[i] {
			t.Errorf("day %d = %q, want %q", i, day.Day, weekdays[i])
		}
		if day.Active != wantActive || day.Active != 6.0 {
			t.Errorf("%s active = %v, want %v", day.Day, day.Active, wantActive)
		}
		if day.Idle != 0.7 {
			t.Errorf("%s idle = %v, want 0.7", day.Day, day.Idle)
		}
		if day.Productivity != 83.6 {
			t.Errorf("%s productivity = %v, want 83.6", day.Day, day.Productivity)
		}
	}
}

func TestBuildReportEmpty(t *testing.T) {
	r := BuildReport(nil, "week")

	if r.Range != "week" {
		t.Errorf("Range = %v, want week", r.Range)
	}
	if r.TotalHours != 0 || r.ActiveHours != 0 || r.IdleHours != 0 || r.Productivity != 0 {
		t.Errorf("BuildReport(nil) = %+v, want zero totals", r)
	}
	if len(r.DailyBreakdown) != 5 {
		t.Fatalf("DailyBreakdown has %d entries, want 5", len(r.DailyBreakdown))
	}
	for _, day := range r.DailyBreakdown {
		if day.Active != 0 || day.Idle != 0 || day.Productivity != 0 {
			t.Errorf("%s = %+v, want zeros", day.Day, day)
		}
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{30.099999999999998, 30.1},
		{6.02, 6.0},
		{0.68, 0.7},
		{83.6, 83.6},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
