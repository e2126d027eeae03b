package model

import "time"

// Profile stores additional, user-editable information about an account.
// Exactly one profile exists per user; it is created together with the user.
//
// Username and Email are denormalized from the owning user when reading;
// Following lists the usernames of users the owner follows. None of the
// three are ever written through this struct.
type Profile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Following []string  `json:"following"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
