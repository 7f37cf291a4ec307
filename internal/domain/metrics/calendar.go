package metrics

import "time"

// Calendar answers working-day questions for a fixed holiday table.
// The zero value counts weekdays with no holidays.
type Calendar struct {
	holidays map[string]struct{}
}

func NewCalendar(holidays []time.Time) *Calendar {
	c := &Calendar{holidays: make(map[string]struct{}, len(holidays))}
	for _, day := range holidays {
		c.holidays[dateKey(day)] = struct{}{}
	}
	return c
}

// WorkingDays counts Mon-Fri days in [start, end] inclusive that are not
// holidays. Returns 0 when end is before start.
func (c *Calendar) WorkingDays(start, end time.Time) int {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return 0
	}

	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		if c.isHoliday(day) {
			continue
		}
		count++
	}
	return count
}

// OverlapWorkingDays clips [absenceStart, absenceEnd] to the reporting
// period and counts the working days of the clipped interval. An inverted
// clip counts as zero overlap.
func (c *Calendar) OverlapWorkingDays(absenceStart, absenceEnd, periodStart, periodEnd time.Time) int {
	start := absenceStart
	if periodStart.After(start) {
		start = periodStart
	}
	end := absenceEnd
	if periodEnd.Before(end) {
		end = periodEnd
	}
	if end.Before(start) {
		return 0
	}
	return c.WorkingDays(start, end)
}

func (c *Calendar) isHoliday(day time.Time) bool {
	if c == nil || c.holidays == nil {
		return false
	}
	_, ok := c.holidays[dateKey(day)]
	return ok
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
