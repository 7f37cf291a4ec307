package project

import "time"

const (
	StatusActive   = "active"
	StatusOnHold   = "on_hold"
	StatusFinished = "finished"
)

type Project struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"clientId"`
	Name          string    `json:"name"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	TotalHours    float64   `json:"totalHours"`
	TotalCost     float64   `json:"totalCost"`
	Status        string    `json:"status"`
	MigratedHours float64   `json:"migratedHours"`
	MigratedCost  float64   `json:"migratedCost"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
