package repository

import (
	"context"

	"pulse/internal/model"
)

// CommentFilter narrows comment listings. Zero values mean "no filter".
type CommentFilter struct {
	PostID string
	UserID string
}

// CommentRepository defines data access for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) (*model.Comment, error)
	FindByID(ctx context.Context, id string) (*model.Comment, error)
	List(ctx context.Context, f CommentFilter) ([]model.Comment, error)
	Update(ctx context.Context, c *model.Comment) (*model.Comment, error)
	Delete(ctx context.Context, id string) error

	// Exists reports whether the user already commented on the post.
	Exists(ctx context.Context, userID, postID string) (bool, error)
}
