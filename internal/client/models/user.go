// Package models defines the data transfer objects exchanged with the
// picshare backend. JSON tags match the backend's field names exactly.
package models

// User is the authenticated account as returned by /retrieveuser.
// It is fetched, never mutated locally; re-fetch to refresh.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	UUID     string `json:"uuid"`
}
