package metrics

import (
	"testing"
	"time"
)

func testProject() Project {
	return Project{
		ID:         "p1",
		Name:       "Intranet rebuild",
		Start:      date(2025, 1, 1),
		End:        date(2025, 3, 1),
		TotalHours: 100,
		TotalCost:  1000,
	}
}

func TestProjectMetricsOvertimeDoubling(t *testing.T) {
	project := testProject()
	entries := []TimeEntry{
		{ID: "e1", UserID: "u1", Hours: 20, Date: date(2025, 1, 10)},
		{ID: "e2", UserID: "u1", Hours: 5, Overtime: true, Date: date(2025, 1, 11)},
	}
	rates := map[string]float64{"u1": 10}

	result, diags := ProjectMetrics(project, entries, rates, date(2025, 2, 1))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if result.RealizedHours != 30 {
		t.Fatalf("expected 30 realized hours, got %v", result.RealizedHours)
	}
	if result.RealizedCost != 400 {
		t.Fatalf("expected realized cost 400, got %v", result.RealizedCost)
	}
	if result.HoursPercent != 30 {
		t.Fatalf("expected hours percentage 30, got %v", result.HoursPercent)
	}
}

func TestProjectMetricsSingleOvertimeEntry(t *testing.T) {
	project := testProject()
	entries := []TimeEntry{
		{ID: "e1", UserID: "u1", Hours: 5, Overtime: true, Date: date(2025, 1, 10)},
	}
	result, _ := ProjectMetrics(project, entries, map[string]float64{"u1": 10}, date(2025, 2, 1))
	if result.RealizedCost != 100 {
		t.Fatalf("expected overtime cost 100, got %v", result.RealizedCost)
	}
	if result.RealizedHours != 10 {
		t.Fatalf("expected overtime hours doubled to 10, got %v", result.RealizedHours)
	}
}

func TestProjectMetricsNoEntries(t *testing.T) {
	result, diags := ProjectMetrics(testProject(), nil, nil, date(2025, 2, 1))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if result.RealizedHours != 0 || result.RealizedCost != 0 {
		t.Fatalf("expected zero realized figures, got %v hours / %v cost", result.RealizedHours, result.RealizedCost)
	}
	if result.CPI != 1.0 {
		t.Fatalf("expected neutral CPI 1.0 with no spend, got %v", result.CPI)
	}
}

func TestProjectMetricsMigratedOnly(t *testing.T) {
	project := testProject()
	project.MigratedHours = 40
	project.MigratedCost = 300

	result, _ := ProjectMetrics(project, nil, nil, date(2025, 2, 1))
	if result.RealizedHours != 40 {
		t.Fatalf("expected migrated hours 40, got %v", result.RealizedHours)
	}
	if result.RealizedCost != 300 {
		t.Fatalf("expected migrated cost 300, got %v", result.RealizedCost)
	}
}

func TestProjectMetricsZeroBudget(t *testing.T) {
	project := testProject()
	project.TotalHours = 0
	project.TotalCost = 0
	entries := []TimeEntry{{ID: "e1", UserID: "u1", Hours: 8, Date: date(2025, 1, 10)}}

	result, _ := ProjectMetrics(project, entries, map[string]float64{"u1": 20}, date(2025, 2, 1))
	if result.HoursPercent != 0 || result.CostPercent != 0 {
		t.Fatalf("expected zero percentages for zero budget, got %v / %v", result.HoursPercent, result.CostPercent)
	}
	if result.CPI != 1.0 {
		t.Fatalf("expected neutral CPI for zero budget, got %v", result.CPI)
	}
}

func TestProjectMetricsMissingRate(t *testing.T) {
	entries := []TimeEntry{
		{ID: "e1", UserID: "u1", Hours: 10, Date: date(2025, 1, 10)},
		{ID: "e2", UserID: "ghost", Hours: 10, Date: date(2025, 1, 11)},
	}
	result, diags := ProjectMetrics(testProject(), entries, map[string]float64{"u1": 10}, date(2025, 2, 1))

	if result.RealizedCost != 100 {
		t.Fatalf("expected unrated entry to contribute 0 cost, got %v", result.RealizedCost)
	}
	if result.RealizedHours != 20 {
		t.Fatalf("expected unrated entry to still count hours, got %v", result.RealizedHours)
	}
	if len(diags) != 1 || diags[0].Kind != DiagMissingRate {
		t.Fatalf("expected one missing_rate diagnostic, got %v", diags)
	}
}

func TestProjectMetricsNegativeHoursSkipped(t *testing.T) {
	entries := []TimeEntry{
		{ID: "e1", UserID: "u1", Hours: -3, Date: date(2025, 1, 10)},
		{ID: "e2", UserID: "u1", Hours: 10, Date: date(2025, 1, 11)},
	}
	result, diags := ProjectMetrics(testProject(), entries, map[string]float64{"u1": 10}, date(2025, 2, 1))

	if result.RealizedHours != 10 || result.RealizedCost != 100 {
		t.Fatalf("expected negative row excluded, got %v hours / %v cost", result.RealizedHours, result.RealizedCost)
	}
	if len(diags) != 1 || diags[0].Kind != DiagInvalidHours {
		t.Fatalf("expected one invalid_hours diagnostic, got %v", diags)
	}
	if diags[0].Row != "e1" {
		t.Fatalf("expected diagnostic on e1, got %v", diags[0].Row)
	}
}

func TestProjectMetricsAsOfClippedToEnd(t *testing.T) {
	project := testProject()
	result, _ := ProjectMetrics(project, nil, nil, date(2026, 1, 1))
	if result.TimePercent != 100 {
		t.Fatalf("expected time percentage 100 past project end, got %v", result.TimePercent)
	}
	if result.RemainingDays != 0 {
		t.Fatalf("expected no remaining days past project end, got %v", result.RemainingDays)
	}
}

func TestClassifyRiskBoundaries(t *testing.T) {
	cases := []struct {
		cpi  float64
		want Risk
	}{
		{1.1, RiskLow},
		{1.0999, RiskMedium},
		{0.9, RiskMedium},
		{0.8999, RiskHigh},
	}
	for _, tc := range cases {
		got, _ := classifyRisk(tc.cpi, 0, 0)
		if got != tc.want {
			t.Fatalf("cpi %v: expected %s, got %s", tc.cpi, tc.want, got)
		}
	}
}

func TestClassifyRiskScheduleEscalation(t *testing.T) {
	// Hours 16 points ahead of time escalates one level.
	if got, _ := classifyRisk(1.2, 50, 34); got != RiskMedium {
		t.Fatalf("expected low risk escalated to medium, got %s", got)
	}
	if got, _ := classifyRisk(1.0, 50, 34); got != RiskHigh {
		t.Fatalf("expected medium risk escalated to high, got %s", got)
	}
	// Already high stays high.
	if got, _ := classifyRisk(0.5, 50, 34); got != RiskHigh {
		t.Fatalf("expected high risk to stay high, got %s", got)
	}
}

func TestClassifyRiskAheadOfScheduleAnnotation(t *testing.T) {
	risk, ahead := classifyRisk(1.2, 10, 40)
	if risk != RiskLow {
		t.Fatalf("being ahead of schedule must not change the level, got %s", risk)
	}
	if !ahead {
		t.Fatal("expected ahead-of-schedule annotation")
	}
}

func TestProjectMetricsEACProjection(t *testing.T) {
	project := testProject()
	// 2025-01-01 to 2025-03-01 is 59 days; as-of day 30 leaves 29 remaining.
	asOf := project.Start.Add(30 * 24 * time.Hour)
	entries := []TimeEntry{{ID: "e1", UserID: "u1", Hours: 10, Date: date(2025, 1, 10)}}
	result, _ := ProjectMetrics(project, entries, map[string]float64{"u1": 50}, asOf)

	planned := (30.0 / 59.0) * 1000
	cpi := planned / 500
	wantEAC := 500 + (500/30.0/cpi)*29
	if diff := result.EAC - wantEAC; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected EAC %v, got %v", wantEAC, result.EAC)
	}
	if result.VAC != 1000-result.EAC {
		t.Fatalf("expected VAC to be total cost minus EAC, got %v", result.VAC)
	}
}
