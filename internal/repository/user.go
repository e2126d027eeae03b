package repository

import (
	"context"

	"pulse/internal/model"
)

// UserRepository defines data access for user accounts using SQL queries only.
// No business logic here, strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user row. The caller provides ID, PasswordHash and
	// timestamps; the stored record is returned.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns a user by its ID.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail returns a user by email address.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// ExistsByEmail reports whether any user other than excludeID has the email.
	// Pass an empty excludeID to check all rows.
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)

	// ExistsByUsername reports whether the username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Update persists email, names and password hash for an existing user.
	Update(ctx context.Context, u *model.User) (*model.User, error)
}
