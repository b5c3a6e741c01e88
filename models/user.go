package models

import "time"

// User represents a registered account or an ephemeral guest. Guests carry
// an empty password hash and can never log in with a password.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsGuest      bool      `json:"is_guest" db:"is_guest"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
