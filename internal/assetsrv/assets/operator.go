package assets

import "time"

// Operator is the organization operating assets. There is no operator
// backend service yet, so lookups return a canned record.
// TODO: replace the canned record once svc-storage grows an operator family.
type Operator struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Country     string     `json:"country"`
	City        string     `json:"city"`
	Address     string     `json:"address"`
	PostalCode  string     `json:"postal_code"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Description string     `json:"description"`
	Logo        string     `json:"logo"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
