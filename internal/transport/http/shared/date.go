package shared

import "time"

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// ParsePeriod resolves the from/to query values, defaulting to the current
// month when both are empty.
func ParsePeriod(fromValue, toValue string) (time.Time, time.Time, error) {
	if fromValue == "" && toValue == "" {
		now := time.Now().UTC()
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), nil
	}
	from, err := ParseDate(fromValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseDate(toValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
