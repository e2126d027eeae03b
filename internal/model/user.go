package model

import "time"

// User is an account record. It is a pure domain model with no
// database-specific dependencies or tags, so it can be shared across
// layers (HTTP, service, repository) without coupling to persistence.
//
// PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	IsStaff      bool      `json:"-"`
	IsSuperuser  bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRef is the minimal user representation returned by the
// followers/following listings.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
