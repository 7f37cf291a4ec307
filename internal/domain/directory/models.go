package directory

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	RateID    string    `json:"rateId,omitempty"`
	Teams     []string  `json:"teams"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type Rate struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	RateCost float64 `json:"rateCost"`
}
