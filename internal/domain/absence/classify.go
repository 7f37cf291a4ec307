package absence

import "strings"

// Classify maps the free-text absence type onto a reporting kind. The
// source data is Portuguese; matching is by substring because the legacy
// system never constrained the field.
func Classify(absenceType string) string {
	normalized := strings.ToLower(absenceType)
	switch {
	case strings.Contains(normalized, "férias"):
		return KindVacation
	case strings.Contains(normalized, "feriado"):
		return KindHoliday
	case strings.Contains(normalized, "licença"):
		return KindLeave
	default:
		return KindOther
	}
}
