package metrics

import "fmt"

const (
	DiagMissingRate      = "missing_rate"
	DiagInvalidHours     = "invalid_hours"
	DiagInvalidDateRange = "invalid_date_range"
	DiagBadMembership    = "bad_membership"
)

// Diagnostic records one per-row data-quality problem encountered during a
// computation. Computations never fail on bad rows; they skip the row's
// contribution and report it here so the caller can decide whether to warn.
type Diagnostic struct {
	Kind   string `json:"kind"`
	Row    string `json:"row"`
	Detail string `json:"detail"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s (%s): %s", d.Kind, d.Row, d.Detail)
}
