package models

import (
	"time"
)

// UserCreateRequest carries the registration input after transport-level
// validation.
type UserCreateRequest struct {
	Email    string
	Password string
	Name     string
	Mobile   string
	Aadhaar  string
}

// User is the identity record persisted in the users table. PasswordHash is
// never serialized and never returned to callers.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Mobile       string    `json:"mobile"`
	Aadhaar      string    `json:"aadhaar"`
	Balance      float64   `json:"balance"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitzero"`
}
