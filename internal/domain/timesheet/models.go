package timesheet

import "time"

type Entry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ProjectID  string    `json:"projectId"`
	Date       time.Time `json:"date"`
	Hours      float64   `json:"hours"`
	Billable   bool      `json:"billable"`
	Overtime   bool      `json:"overtime"`
	CategoryID string    `json:"categoryId,omitempty"`
	ActivityID string    `json:"activityId,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EntryPayload is the write shape. Billable and overtime are accepted as
// bool, number or string because the legacy importer produced all three;
// they are normalized once at this boundary.
type EntryPayload struct {
	UserID     string  `json:"userId"`
	ProjectID  string  `json:"projectId"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Billable   any     `json:"billable"`
	Overtime   any     `json:"overtime"`
	CategoryID string  `json:"categoryId"`
	ActivityID string  `json:"activityId"`
	Notes      string  `json:"notes"`
}

type Filter struct {
	UserID    string
	ProjectID string
	From      time.Time
	To        time.Time
}
