package absence

import "time"

const (
	KindVacation = "vacation"
	KindHoliday  = "holiday"
	KindLeave    = "leave"
	KindOther    = "other"
)

type Absence struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Kind        string    `json:"kind"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Filter struct {
	UserID string
	From   time.Time
	To     time.Time
}
