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

// FollowService defines follow-relationship use cases.
type FollowService interface {
	// Follow creates a relationship from the viewer to the target user.
	Follow(ctx context.Context, v Viewer, targetUserID string) (*model.Follow, error)

	// List returns all relationships for admins and nothing for anyone else.
	List(ctx context.Context, v Viewer) ([]model.Follow, error)

	// Get returns a single relationship by ID.
	Get(ctx context.Context, id string) (*model.Follow, error)

	// Delete removes a relationship the viewer owns as follower.
	Delete(ctx context.Context, v Viewer, id string) error

	// Unfollow removes the viewer's relationship to the target user.
	Unfollow(ctx context.Context, v Viewer, targetUserID string) error

	// Following lists the users the given user follows.
	Following(ctx context.Context, userID string) ([]model.UserRef, error)

	// Followers lists the users following the given user.
	Followers(ctx context.Context, userID string) ([]model.UserRef, error)
}

type followService struct {
	follows repository.FollowRepository
	users   repository.UserRepository
}

// NewFollowService constructs a new FollowService.
func NewFollowService(follows repository.FollowRepository, users repository.UserRepository) FollowService {
	return &followService{follows: follows, users: users}
}

func (s *followService) Follow(ctx context.Context, v Viewer, targetUserID string) (*model.Follow, error) {
	if targetUserID == v.UserID {
		return nil, ErrSelfFollow
	}

	target, err := s.users.FindByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	exists, err := s.follows.Exists(ctx, v.UserID, target.ID)
	if err != nil {
		return nil, fmt.Errorf("check follow: %w", err)
	}
	if exists {
		return nil, ErrAlreadyFollowing
	}

	follow, err := s.follows.Create(ctx, &model.Follow{
		ID:                uuid.New().String(),
		FollowerID:        v.UserID,
		FollowingID:       target.ID,
		FollowingUsername: target.Username,
		CreatedAt:         time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create follow: %w", err)
	}
	return follow, nil
}

func (s *followService) List(ctx context.Context, v Viewer) ([]model.Follow, error) {
	if !v.Admin() {
		return []model.Follow{}, nil
	}
	items, err := s.follows.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list follows: %w", err)
	}
	return items, nil
}

func (s *followService) Get(ctx context.Context, id string) (*model.Follow, error) {
	follow, err := s.follows.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find follow: %w", err)
	}
	return follow, nil
}

func (s *followService) Delete(ctx context.Context, v Viewer, id string) error {
	follow, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if follow.FollowerID != v.UserID {
		return ErrForbidden
	}
	if err := s.follows.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}

func (s *followService) Unfollow(ctx context.Context, v Viewer, targetUserID string) error {
	if _, err := s.users.FindByID(ctx, targetUserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	removed, err := s.follows.DeletePair(ctx, v.UserID, targetUserID)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	if !removed {
		return ErrNotFollowing
	}
	return nil
}

func (s *followService) Following(ctx context.Context, userID string) ([]model.UserRef, error) {
	refs, err := s.follows.Following(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}
	return refs, nil
}

func (s *followService) Followers(ctx context.Context, userID string) ([]model.UserRef, error) {
	refs, err := s.follows.Followers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list followers: %w", err)
	}
	return refs, nil
}
