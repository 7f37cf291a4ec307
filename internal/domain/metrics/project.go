package metrics

import (
	"fmt"
	"time"
)

// ProjectMetrics computes the cost/schedule performance row for one project
// from its time entries and the per-user hourly cost table. Overtime entries
// double both their hour and cost contribution. Entries whose user has no
// resolvable rate still count toward hours but contribute zero cost and are
// reported as diagnostics.
func ProjectMetrics(project Project, entries []TimeEntry, rates map[string]float64, asOf time.Time) (ProjectPerformance, []Diagnostic) {
	var diags []Diagnostic

	if asOf.IsZero() {
		asOf = time.Now()
	}
	if asOf.After(project.End) {
		asOf = project.End
	}

	var regularHours, overtimeHours, realizedCost float64
	for _, entry := range entries {
		if entry.Hours < 0 {
			diags = append(diags, Diagnostic{
				Kind:   DiagInvalidHours,
				Row:    entry.ID,
				Detail: fmt.Sprintf("negative hours %.2f skipped", entry.Hours),
			})
			continue
		}

		factor := 1.0
		if entry.Overtime {
			factor = 2.0
			overtimeHours += entry.Hours
		} else {
			regularHours += entry.Hours
		}

		rate, ok := rates[entry.UserID]
		if !ok {
			diags = append(diags, Diagnostic{
				Kind:   DiagMissingRate,
				Row:    entry.ID,
				Detail: "no hourly rate for user " + entry.UserID + ", entry cost counted as 0",
			})
			continue
		}
		realizedCost += entry.Hours * rate * factor
	}

	realizedHours := regularHours + 2*overtimeHours + project.MigratedHours
	realizedCost += project.MigratedCost

	totalDays := project.End.Sub(project.Start).Hours() / 24
	if totalDays < 0 {
		diags = append(diags, Diagnostic{
			Kind:   DiagInvalidDateRange,
			Row:    project.ID,
			Detail: "project end date precedes start date",
		})
		totalDays = 0
	}
	elapsedDays := clamp(asOf.Sub(project.Start).Hours()/24, 0, totalDays)
	remainingDays := totalDays - elapsedDays

	timeFraction := 0.0
	if totalDays > 0 {
		timeFraction = elapsedDays / totalDays
	}
	plannedCost := timeFraction * project.TotalCost

	// No budget or no spend both read as on-budget rather than dividing.
	cpi := 1.0
	if project.TotalCost > 0 && realizedCost > 0 {
		cpi = plannedCost / realizedCost
	}

	eac := realizedCost
	if elapsedDays > 0 && cpi > 0 {
		eac = realizedCost + (realizedCost/elapsedDays/cpi)*remainingDays
	}

	result := ProjectPerformance{
		ProjectID:     project.ID,
		Name:          project.Name,
		RealizedHours: realizedHours,
		RealizedCost:  realizedCost,
		PlannedCost:   plannedCost,
		HoursPercent:  percent(realizedHours, project.TotalHours),
		CostPercent:   percent(realizedCost, project.TotalCost),
		TimePercent:   timeFraction * 100,
		ElapsedDays:   elapsedDays,
		RemainingDays: remainingDays,
		TotalDays:     totalDays,
		CPI:           cpi,
		EAC:           eac,
		VAC:           project.TotalCost - eac,
	}
	result.Risk, result.AheadOfSchedule = classifyRisk(cpi, result.HoursPercent, result.TimePercent)

	return result, diags
}

// classifyRisk maps CPI to a risk level and applies the schedule check.
// A schedule overrun raises the level by at most one step and never lowers
// it. Running well ahead of schedule sets the flag without changing the
// level.
func classifyRisk(cpi, hoursPercent, timePercent float64) (Risk, bool) {
	risk := RiskMedium
	switch {
	case cpi >= 1.1:
		risk = RiskLow
	case cpi < 0.9:
		risk = RiskHigh
	}

	variance := hoursPercent - timePercent
	if variance > 15 {
		switch risk {
		case RiskLow:
			risk = RiskMedium
		case RiskMedium:
			risk = RiskHigh
		}
	}

	return risk, variance < -15
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
