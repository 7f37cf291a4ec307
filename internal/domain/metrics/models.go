package metrics

import "time"

// HoursPerDay is the contracted working hours in one working day.
const HoursPerDay = 8.0

type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

type GroupBy string

const (
	GroupByTeam GroupBy = "team"
	GroupByUser GroupBy = "user"
)

// TimeEntry is one logged work interval, already normalized by the caller.
type TimeEntry struct {
	ID        string
	UserID    string
	ProjectID string
	Date      time.Time
	Hours     float64
	Billable  bool
	Overtime  bool
}

// Absence is one contiguous leave interval.
type Absence struct {
	ID     string
	UserID string
	Start  time.Time
	End    time.Time
}

// Member is an active user together with the teams they belong to.
type Member struct {
	UserID string
	Name   string
	Teams  []string
}

// Project is the budget snapshot a performance computation runs against.
// Migrated figures are historical totals carried over from the legacy
// system and count toward realized hours and cost.
type Project struct {
	ID            string
	Name          string
	Start         time.Time
	End           time.Time
	TotalHours    float64
	TotalCost     float64
	MigratedHours float64
	MigratedCost  float64
}

type Period struct {
	Start time.Time
	End   time.Time
}

// ProjectPerformance is the cost/schedule result row for one project.
type ProjectPerformance struct {
	ProjectID       string  `json:"projectId"`
	Name            string  `json:"name"`
	RealizedHours   float64 `json:"realizedHours"`
	RealizedCost    float64 `json:"realizedCost"`
	PlannedCost     float64 `json:"plannedCost"`
	HoursPercent    float64 `json:"hoursPercentage"`
	CostPercent     float64 `json:"costPercentage"`
	TimePercent     float64 `json:"timePercentage"`
	ElapsedDays     float64 `json:"elapsedDays"`
	RemainingDays   float64 `json:"remainingDays"`
	TotalDays       float64 `json:"totalDays"`
	CPI             float64 `json:"cpi"`
	EAC             float64 `json:"eac"`
	VAC             float64 `json:"vac"`
	Risk            Risk    `json:"riskLevel"`
	AheadOfSchedule bool    `json:"aheadOfSchedule"`
}

// OccupancyRow is one aggregate row of the team/user productivity report.
type OccupancyRow struct {
	Group            string  `json:"group"`
	Members          int     `json:"members"`
	TotalHours       float64 `json:"totalHours"`
	BillableHours    float64 `json:"billableHours"`
	OvertimeHours    float64 `json:"overtimeHours"`
	AbsenceDays      int     `json:"absenceDays"`
	AbsencePercent   float64 `json:"absencePercentage"`
	AvailableHours   float64 `json:"availableHours"`
	OccupancyPercent float64 `json:"occupancyPercentage"`
	BillablePercent  float64 `json:"billablePercentage"`
	OvertimePercent  float64 `json:"overtimePercentage"`
}

// percent guards the zero denominator: an empty whole always reads as 0%.
func percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
