package model

import "time"

// Account is a reference entity that transactions belong to.
type Account struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Balance   float64   `json:"balance"`
	IsDefault bool      `json:"is_default"`
}

// AccountNames builds an id -> display name lookup.
func AccountNames(accounts []Account) map[string]string {
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}
	return names
}
