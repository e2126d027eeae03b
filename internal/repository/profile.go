package repository

import (
	"context"

	"pulse/internal/model"
)

// ProfileRepository defines data access for user profiles. Read operations
// join the owning user to populate the denormalized Username/Email fields;
// the followed-usernames list is resolved separately by the service through
// FollowRepository.
type ProfileRepository interface {
	// Create inserts an empty profile row for the given user.
	Create(ctx context.Context, p *model.Profile) (*model.Profile, error)

	// FindByID returns a profile by its own ID.
	FindByID(ctx context.Context, id string) (*model.Profile, error)

	// FindByUserID returns the profile owned by the given user.
	FindByUserID(ctx context.Context, userID string) (*model.Profile, error)

	// FindByUsername returns the profile whose owner has the given username.
	FindByUsername(ctx context.Context, username string) (*model.Profile, error)

	// List returns all profiles ordered by creation time.
	List(ctx context.Context) ([]model.Profile, error)

	// UpdateBio persists a new bio for the profile.
	UpdateBio(ctx context.Context, id, bio string) (*model.Profile, error)
}
