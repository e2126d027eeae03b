package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pulse/internal/model"
	"pulse/internal/repository"
)

// CommentListFilter narrows the comment listing.
type CommentListFilter struct {
	PostID     string
	MyComments bool
}

// CommentService defines comment use cases. A user may leave at most one
// comment per post.
type CommentService interface {
	// Comment records the viewer's comment on the post.
	Comment(ctx context.Context, v Viewer, postID, content string) (*model.Comment, error)

	// List returns comments, optionally narrowed to a post or the viewer's own.
	List(ctx context.Context, v Viewer, f CommentListFilter) ([]model.Comment, error)

	// Get returns a single comment by ID.
	Get(ctx context.Context, id string) (*model.Comment, error)

	// Update replaces the body of the viewer's own comment.
	Update(ctx context.Context, v Viewer, id, content string) (*model.Comment, error)

	// Delete removes the viewer's own comment.
	Delete(ctx context.Context, v Viewer, id string) error
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

// NewCommentService constructs a new CommentService.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{comments: comments, posts: posts}
}

func (s *commentService) Comment(ctx context.Context, v Viewer, postID, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	exists, err := s.comments.Exists(ctx, v.UserID, postID)
	if err != nil {
		return nil, fmt.Errorf("check comment: %w", err)
	}
	if exists {
		return nil, ErrAlreadyCommented
	}

	now := time.Now().UTC()
	comment, err := s.comments.Create(ctx, &model.Comment{
		ID:          uuid.New().String(),
		UserID:      v.UserID,
		PostID:      post.ID,
		PostContent: post.Content,
		Content:     content,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) List(ctx context.Context, v Viewer, f CommentListFilter) ([]model.Comment, error) {
	filter := repository.CommentFilter{PostID: f.PostID}
	if f.MyComments {
		filter.UserID = v.UserID
	}
	items, err := s.comments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return items, nil
}

func (s *commentService) Get(ctx context.Context, id string) (*model.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, v Viewer, id, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	comment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != v.UserID {
		return nil, ErrForbidden
	}

	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	updated, err := s.comments.Update(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return updated, nil
}

func (s *commentService) Delete(ctx context.Context, v Viewer, id string) error {
	comment, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID != v.UserID {
		return ErrForbidden
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
