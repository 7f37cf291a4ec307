package metrics

import (
	"sort"
)

// Occupancy aggregates logged hours and absences into one productivity row
// per team or per user. A member of several teams contributes to every one
// of their team rows, so team figures do not sum to the company total.
func Occupancy(cal *Calendar, period Period, members []Member, entries []TimeEntry, absences []Absence, groupBy GroupBy) ([]OccupancyRow, []Diagnostic) {
	var diags []Diagnostic

	groups := groupMembers(members, groupBy)

	entriesByUser := make(map[string][]TimeEntry, len(members))
	for _, entry := range entries {
		if entry.Date.Before(period.Start) || entry.Date.After(period.End) {
			continue
		}
		entriesByUser[entry.UserID] = append(entriesByUser[entry.UserID], entry)
	}

	absenceDaysByUser := make(map[string]int)
	for _, absence := range absences {
		if absence.End.Before(absence.Start) {
			diags = append(diags, Diagnostic{
				Kind:   DiagInvalidDateRange,
				Row:    absence.ID,
				Detail: "absence end date precedes start date, counted as zero days",
			})
			continue
		}
		absenceDaysByUser[absence.UserID] += cal.OverlapWorkingDays(absence.Start, absence.End, period.Start, period.End)
	}

	periodHours := float64(cal.WorkingDays(period.Start, period.End)) * HoursPerDay

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]OccupancyRow, 0, len(names))
	for _, name := range names {
		userIDs := groups[name]
		row := OccupancyRow{Group: name, Members: len(userIDs)}

		for _, userID := range userIDs {
			for _, entry := range entriesByUser[userID] {
				row.TotalHours += entry.Hours
				if entry.Billable {
					row.BillableHours += entry.Hours
				}
				if entry.Overtime {
					row.OvertimeHours += entry.Hours
				}
			}
			row.AbsenceDays += absenceDaysByUser[userID]
		}

		capacity := periodHours * float64(row.Members)
		row.AbsencePercent = percent(float64(row.AbsenceDays)*HoursPerDay, capacity)
		row.AvailableHours = capacity*(1-row.AbsencePercent/100) - row.TotalHours
		if row.AvailableHours < 0 {
			row.AvailableHours = 0
		}
		row.OccupancyPercent = percent(row.TotalHours, capacity)
		row.BillablePercent = percent(row.BillableHours, capacity)
		row.OvertimePercent = percent(row.OvertimeHours, row.TotalHours)

		rows = append(rows, row)
	}

	return rows, diags
}

func groupMembers(members []Member, groupBy GroupBy) map[string][]string {
	groups := make(map[string][]string)
	for _, member := range members {
		if groupBy == GroupByUser {
			name := member.Name
			if name == "" {
				name = member.UserID
			}
			groups[name] = append(groups[name], member.UserID)
			continue
		}
		for _, team := range member.Teams {
			groups[team] = append(groups[team], member.UserID)
		}
	}
	return groups
}
