package timesheet

import (
	"fmt"
	"strings"
)

// ParseFlag canonicalizes the boolean encodings found in legacy data:
// real booleans, 0/1 numerics, and a handful of string spellings
// (including the Portuguese sim/não). A nil value reads as false.
func ParseFlag(value any) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case float64:
		// JSON numbers decode as float64.
		if v == 0 {
			return false, nil
		}
		if v == 1 {
			return true, nil
		}
		return false, fmt.Errorf("numeric flag must be 0 or 1, got %v", v)
	case int:
		if v == 0 {
			return false, nil
		}
		if v == 1 {
			return true, nil
		}
		return false, fmt.Errorf("numeric flag must be 0 or 1, got %d", v)
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "0", "f", "false", "no", "não", "nao":
			return false, nil
		case "1", "t", "true", "yes", "sim":
			return true, nil
		}
		return false, fmt.Errorf("unrecognized flag value %q", v)
	default:
		return false, fmt.Errorf("unsupported flag type %T", value)
	}
}
