package company

import "time"

// Record is a company a user pinned to their dashboard.
type Record struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	CIN       string    `json:"cin"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
