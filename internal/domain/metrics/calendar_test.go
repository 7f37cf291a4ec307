package metrics

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDaysSingleDay(t *testing.T) {
	cal := NewCalendar(nil)

	// 2025-01-06 is a Monday.
	if got := cal.WorkingDays(date(2025, 1, 6), date(2025, 1, 6)); got != 1 {
		t.Fatalf("expected 1 working day for a weekday, got %d", got)
	}
	// 2025-01-04 is a Saturday.
	if got := cal.WorkingDays(date(2025, 1, 4), date(2025, 1, 4)); got != 0 {
		t.Fatalf("expected 0 working days for a Saturday, got %d", got)
	}
}

func TestWorkingDaysInvertedRange(t *testing.T) {
	cal := NewCalendar(nil)
	if got := cal.WorkingDays(date(2025, 1, 10), date(2025, 1, 6)); got != 0 {
		t.Fatalf("expected 0 for inverted range, got %d", got)
	}
}

func TestWorkingDaysExcludesHolidays(t *testing.T) {
	cal := NewCalendar([]time.Time{date(2025, 1, 1)})

	// Wed 2025-01-01 (holiday), Thu 02, Fri 03.
	if got := cal.WorkingDays(date(2025, 1, 1), date(2025, 1, 3)); got != 2 {
		t.Fatalf("expected 2 working days with New Year excluded, got %d", got)
	}
	if got := cal.WorkingDays(date(2025, 1, 1), date(2025, 1, 1)); got != 0 {
		t.Fatalf("expected 0 working days on a holiday, got %d", got)
	}
}

func TestWorkingDaysFullWeek(t *testing.T) {
	cal := NewCalendar(nil)
	// Mon 2025-01-06 through Sun 2025-01-12.
	if got := cal.WorkingDays(date(2025, 1, 6), date(2025, 1, 12)); got != 5 {
		t.Fatalf("expected 5 working days in a full week, got %d", got)
	}
}

func TestOverlapWorkingDaysClipsToPeriod(t *testing.T) {
	cal := NewCalendar(nil)

	// Absence covers all of January; period is Wed 15th to Mon 20th.
	// The clipped range Wed-Mon holds Wed, Thu, Fri, Mon.
	got := cal.OverlapWorkingDays(date(2025, 1, 1), date(2025, 1, 31), date(2025, 1, 15), date(2025, 1, 20))
	if got != 4 {
		t.Fatalf("expected 4 overlapping working days, got %d", got)
	}
}

func TestOverlapWorkingDaysDisjoint(t *testing.T) {
	cal := NewCalendar(nil)
	got := cal.OverlapWorkingDays(date(2025, 1, 1), date(2025, 1, 5), date(2025, 2, 1), date(2025, 2, 28))
	if got != 0 {
		t.Fatalf("expected 0 for disjoint intervals, got %d", got)
	}
}
