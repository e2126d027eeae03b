package repository

import (
	"context"

	"pulse/internal/model"
)

// FollowRepository defines data access for follow relationships.
type FollowRepository interface {
	// Create inserts a new follow row and returns the stored record.
	Create(ctx context.Context, f *model.Follow) (*model.Follow, error)

	// FindByID returns a follow relationship by its ID.
	FindByID(ctx context.Context, id string) (*model.Follow, error)

	// List returns every follow relationship, newest first.
	List(ctx context.Context) ([]model.Follow, error)

	// Delete removes a follow row by ID.
	Delete(ctx context.Context, id string) error

	// DeletePair removes the relationship follower -> following.
	// Reports whether a row was actually deleted.
	DeletePair(ctx context.Context, followerID, followingID string) (bool, error)

	// Exists reports whether follower already follows following.
	Exists(ctx context.Context, followerID, followingID string) (bool, error)

	// Following returns the users the given user follows.
	Following(ctx context.Context, userID string) ([]model.UserRef, error)

	// Followers returns the users following the given user.
	Followers(ctx context.Context, userID string) ([]model.UserRef, error)
}
