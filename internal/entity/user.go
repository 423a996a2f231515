package entity

import "time"

// User is an admin-dashboard account. Passwords are stored and compared as-is,
// matching the deployed behavior this service replaces.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}
