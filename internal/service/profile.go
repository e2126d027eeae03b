package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"pulse/internal/model"
	"pulse/internal/repository"
)

const maxBioLen = 500

var ErrBioTooLong = errors.New("bio must be at most 500 characters")

// ProfileService defines profile read and update use cases.
type ProfileService interface {
	// List returns profiles visible to the viewer: admins see every profile,
	// everyone else only their own.
	List(ctx context.Context, v Viewer) ([]model.Profile, error)

	// Get resolves a profile by its ID or by username and fills in the list
	// of usernames the owner follows.
	Get(ctx context.Context, idOrUsername string) (*model.Profile, error)

	// UpdateBio replaces the bio on the viewer's own profile.
	UpdateBio(ctx context.Context, v Viewer, idOrUsername, bio string) (*model.Profile, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	follows  repository.FollowRepository
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(profiles repository.ProfileRepository, follows repository.FollowRepository) ProfileService {
	return &profileService{profiles: profiles, follows: follows}
}

func (s *profileService) List(ctx context.Context, v Viewer) ([]model.Profile, error) {
	if v.Admin() {
		items, err := s.profiles.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list profiles: %w", err)
		}
		for i := range items {
			if err := s.fillFollowing(ctx, &items[i]); err != nil {
				return nil, err
			}
		}
		return items, nil
	}

	own, err := s.profiles.FindByUserID(ctx, v.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []model.Profile{}, nil
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if err := s.fillFollowing(ctx, own); err != nil {
		return nil, err
	}
	return []model.Profile{*own}, nil
}

func (s *profileService) Get(ctx context.Context, idOrUsername string) (*model.Profile, error) {
	profile, err := s.resolve(ctx, idOrUsername)
	if err != nil {
		return nil, err
	}
	if err := s.fillFollowing(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) UpdateBio(ctx context.Context, v Viewer, idOrUsername, bio string) (*model.Profile, error) {
	if utf8.RuneCountInString(bio) > maxBioLen {
		return nil, ErrBioTooLong
	}

	profile, err := s.resolve(ctx, idOrUsername)
	if err != nil {
		return nil, err
	}
	if profile.UserID != v.UserID {
		return nil, ErrForbidden
	}

	updated, err := s.profiles.UpdateBio(ctx, profile.ID, bio)
	if err != nil {
		return nil, fmt.Errorf("update bio: %w", err)
	}
	if err := s.fillFollowing(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// resolve looks the profile up by ID when the key parses as a UUID,
// otherwise by the owner's username.
func (s *profileService) resolve(ctx context.Context, idOrUsername string) (*model.Profile, error) {
	var (
		profile *model.Profile
		err     error
	)
	if _, parseErr := uuid.Parse(idOrUsername); parseErr == nil {
		profile, err = s.profiles.FindByID(ctx, idOrUsername)
	} else {
		profile, err = s.profiles.FindByUsername(ctx, idOrUsername)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) fillFollowing(ctx context.Context, p *model.Profile) error {
	refs, err := s.follows.Following(ctx, p.UserID)
	if err != nil {
		return fmt.Errorf("load following: %w", err)
	}
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Username)
	}
	p.Following = names
	return nil
}
