package repository

import (
	"context"

	"pulse/internal/model"
)

// LikeFilter narrows like listings. Zero values mean "no filter".
type LikeFilter struct {
	PostID string
	UserID string
}

// LikeRepository defines data access for likes.
type LikeRepository interface {
	Create(ctx context.Context, l *model.Like) (*model.Like, error)
	FindByID(ctx context.Context, id string) (*model.Like, error)
	List(ctx context.Context, f LikeFilter) ([]model.Like, error)
	Delete(ctx context.Context, id string) error

	// Exists reports whether the user already liked the post.
	Exists(ctx context.Context, userID, postID string) (bool, error)
}
