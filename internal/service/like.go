package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pulse/internal/model"
	"pulse/internal/repository"
)

// LikeListFilter narrows the like listing.
type LikeListFilter struct {
	PostID  string
	MyLikes bool
}

// LikeService defines like use cases.
type LikeService interface {
	// Like records that the viewer liked the post.
	Like(ctx context.Context, v Viewer, postID string) (*model.Like, error)

	// List returns likes, optionally narrowed to a post or the viewer's own.
	List(ctx context.Context, v Viewer, f LikeListFilter) ([]model.Like, error)

	// Get returns a single like by ID.
	Get(ctx context.Context, id string) (*model.Like, error)

	// Delete removes the viewer's own like.
	Delete(ctx context.Context, v Viewer, id string) error
}

type likeService struct {
	likes repository.LikeRepository
	posts repository.PostRepository
}

// NewLikeService constructs a new LikeService.
func NewLikeService(likes repository.LikeRepository, posts repository.PostRepository) LikeService {
	return &likeService{likes: likes, posts: posts}
}

func (s *likeService) Like(ctx context.Context, v Viewer, postID string) (*model.Like, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	exists, err := s.likes.Exists(ctx, v.UserID, postID)
	if err != nil {
		return nil, fmt.Errorf("check like: %w", err)
	}
	if exists {
		return nil, ErrAlreadyLiked
	}

	like, err := s.likes.Create(ctx, &model.Like{
		ID:          uuid.New().String(),
		UserID:      v.UserID,
		PostID:      post.ID,
		PostContent: post.Content,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create like: %w", err)
	}
	return like, nil
}

func (s *likeService) List(ctx context.Context, v Viewer, f LikeListFilter) ([]model.Like, error) {
	filter := repository.LikeFilter{PostID: f.PostID}
	if f.MyLikes {
		filter.UserID = v.UserID
	}
	items, err := s.likes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	return items, nil
}

func (s *likeService) Get(ctx context.Context, id string) (*model.Like, error) {
	like, err := s.likes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find like: %w", err)
	}
	return like, nil
}

func (s *likeService) Delete(ctx context.Context, v Viewer, id string) error {
	like, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if like.UserID != v.UserID {
		return ErrForbidden
	}
	if err := s.likes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}
