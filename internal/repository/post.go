package repository

import (
	"context"

	"pulse/internal/model"
)

// PostFilter narrows post listings. Zero values mean "no filter".
type PostFilter struct {
	// AuthorID keeps only posts written by this user.
	AuthorID string
	// FollowedBy keeps only posts whose author is followed by this user.
	FollowedBy string
	// Hashtag keeps only posts whose content contains "#<Hashtag>".
	Hashtag string
}

// PostRepository defines data access for posts using SQL queries only.
// Reads annotate each row with the author's username and its like count.
type PostRepository interface {
	// Create inserts a new post row and returns the stored record.
	Create(ctx context.Context, p *model.Post) (*model.Post, error)

	// FindByID returns a post by its ID.
	FindByID(ctx context.Context, id string) (*model.Post, error)

	// List returns a page of posts matching the filter, newest first,
	// together with the total row count for that filter.
	List(ctx context.Context, f PostFilter, pq PageQuery) (*PageResult[model.Post], error)

	// Update persists new content for an existing post.
	Update(ctx context.Context, p *model.Post) (*model.Post, error)

	// Delete removes a post by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
