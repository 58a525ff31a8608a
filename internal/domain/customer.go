package domain

import "time"

// Customer is created anew for every submitted rental.
type Customer struct {
	ID         int64     `json:"id,omitempty"`
	LastName   string    `json:"last_name"`
	FirstName  string    `json:"first_name,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	City       string    `json:"city,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// FullName joins first and last name for display and email salutations.
func (c Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}
