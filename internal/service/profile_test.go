package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/model"
	repoMocks "pulse/internal/repository/mocks"
)

func TestProfileService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("admin sees all profiles", func(t *testing.T) {
		profiles := new(repoMocks.MockProfileRepository)
		follows := new(repoMocks.MockFollowRepository)
		profiles.On("List", ctx).Return([]model.Profile{
			{ID: "p1", UserID: "user-a"},
			{ID: "p2", UserID: "user-b"},
		}, nil)
		follows.On("Following", ctx, "user-a").Return([]model.UserRef{{ID: "user-b", Username: "bob"}}, nil)
		follows.On("Following", ctx, "user-b").Return([]model.UserRef{}, nil)

		svc := NewProfileService(profiles, follows)
		items, err := svc.List(ctx, Viewer{UserID: "admin", Staff: true, Superuser: true})

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, []string{"bob"}, items[0].Following)
	})

	t.Run("regular user sees only own", func(t *testing.T) {
		profiles := new(repoMocks.MockProfileRepository)
		follows := new(repoMocks.MockFollowRepository)
		profiles.On("FindByUserID", ctx, "user-a").Return(&model.Profile{ID: "p1", UserID: "user-a"}, nil)
		follows.On("Following", ctx, "user-a").Return([]model.UserRef{}, nil)

		svc := NewProfileService(profiles, follows)
		items, err := svc.List(ctx, Viewer{UserID: "user-a"})

		require.NoError(t, err)
		assert.Len(t, items, 1)
		profiles.AssertNotCalled(t, "List", ctx)
	})
}

func TestProfileService_Get(t *testing.T) {
	ctx := context.Background()
	stored := &model.Profile{ID: "6f1e1c1a-9c1e-4d2a-8a3b-111111111111", UserID: "user-a", Username: "alice"}

	t.Run("by uuid", func(t *testing.T) {
		profiles := new(repoMocks.MockProfileRepository)
		follows := new(repoMocks.MockFollowRepository)
		profiles.On("FindByID", ctx, stored.ID).Return(stored, nil)
		follows.On("Following", ctx, "user-a").Return([]model.UserRef{}, nil)

		svc := NewProfileService(profiles, follows)
		p, err := svc.Get(ctx, stored.ID)

		require.NoError(t, err)
		assert.Equal(t, "alice", p.Username)
		profiles.AssertNotCalled(t, "FindByUsername", ctx, stored.ID)
	})

	t.Run("by username", func(t *testing.T) {
		profiles := new(repoMocks.MockProfileRepository)
		follows := new(repoMocks.MockFollowRepository)
		profiles.On("FindByUsername", ctx, "alice").Return(stored, nil)
		follows.On("Following", ctx, "user-a").Return([]model.UserRef{}, nil)

		svc := NewProfileService(profiles, follows)
		p, err := svc.Get(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, stored.ID, p.ID)
	})
}

func TestProfileService_UpdateBio(t *testing.T) {
	ctx := context.Background()
	stored := &model.Profile{ID: "6f1e1c1a-9c1e-4d2a-8a3b-111111111111", UserID: "user-a"}

	t.Run("owner updates", func(t *testing.T) {
		profiles := new(repoMocks.MockProfileRepository)
		follows := new(repoMocks.MockFollowRepository)
		profiles.On("FindByID", ctx, stored.ID).Return(stored, nil)
		profiles.On("UpdateBio", ctx, stored.ID, "hello").Return(&model.Profile{ID: stored.ID, UserID: "user-a", Bio: "hello"}, nil)
		follows.On("Following", ctx, "user-a").Return([]model.UserRef{}, nil)

		svc := NewProfileService(profiles, follows)
		p, err := svc.UpdateBio(ctx, Viewer{UserID: "user-a"}, stored.ID, "hello")

		require.NoError(t, err)
		assert.Equal(t, "hello", p.Bio)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		profiles := new(repoMocks.MockProfileRepository)
		profiles.On("FindByID", ctx, stored.ID).Return(stored, nil)

		svc := NewProfileService(profiles, new(repoMocks.MockFollowRepository))
		_, err := svc.UpdateBio(ctx, Viewer{UserID: "user-b"}, stored.ID, "hello")

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("bio too long", func(t *testing.T) {
		svc := NewProfileService(new(repoMocks.MockProfileRepository), new(repoMocks.MockFollowRepository))
		_, err := svc.UpdateBio(ctx, Viewer{UserID: "user-a"}, stored.ID, strings.Repeat("x", 501))

		assert.ErrorIs(t, err, ErrBioTooLong)
	})
}
