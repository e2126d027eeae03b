package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pulse/internal/model"
	"pulse/internal/repository"
	repoMocks "pulse/internal/repository/mocks"
)

func TestLikeService_Like(t *testing.T) {
	ctx := context.Background()
	viewer := Viewer{UserID: "user-uuid"}
	post := &model.Post{ID: "post-uuid", Content: "hello"}

	t.Run("happy path", func(t *testing.T) {
		likes := new(repoMocks.MockLikeRepository)
		posts := new(repoMocks.MockPostRepository)
		posts.On("FindByID", ctx, "post-uuid").Return(post, nil)
		likes.On("Exists", ctx, "user-uuid", "post-uuid").Return(false, nil)
		likes.On("Create", ctx, mock.MatchedBy(func(l *model.Like) bool {
			return l.UserID == "user-uuid" && l.PostID == "post-uuid"
		})).Return(&model.Like{ID: "like-uuid"}, nil)

		svc := NewLikeService(likes, posts)
		res, err := svc.Like(ctx, viewer, "post-uuid")

		require.NoError(t, err)
		assert.Equal(t, "like-uuid", res.ID)
	})

	t.Run("missing post", func(t *testing.T) {
		posts := new(repoMocks.MockPostRepository)
		posts.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		svc := NewLikeService(new(repoMocks.MockLikeRepository), posts)
		_, err := svc.Like(ctx, viewer, "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("already liked", func(t *testing.T) {
		likes := new(repoMocks.MockLikeRepository)
		posts := new(repoMocks.MockPostRepository)
		posts.On("FindByID", ctx, "post-uuid").Return(post, nil)
		likes.On("Exists", ctx, "user-uuid", "post-uuid").Return(true, nil)

		svc := NewLikeService(likes, posts)
		_, err := svc.Like(ctx, viewer, "post-uuid")

		assert.ErrorIs(t, err, ErrAlreadyLiked)
	})
}

func TestLikeService_List(t *testing.T) {
	ctx := context.Background()
	viewer := Viewer{UserID: "user-uuid"}

	likes := new(repoMocks.MockLikeRepository)
	likes.On("List", ctx, repository.LikeFilter{PostID: "post-uuid", UserID: "user-uuid"}).
		Return([]model.Like{{ID: "like-uuid"}}, nil)

	svc := NewLikeService(likes, new(repoMocks.MockPostRepository))
	items, err := svc.List(ctx, viewer, LikeListFilter{PostID: "post-uuid", MyLikes: true})

	require.NoError(t, err)
	assert.Len(t, items, 1)
	likes.AssertExpectations(t)
}

func TestLikeService_Delete(t *testing.T) {
	ctx := context.Background()
	stored := &model.Like{ID: "like-uuid", UserID: "user-uuid"}

	t.Run("owner deletes", func(t *testing.T) {
		likes := new(repoMocks.MockLikeRepository)
		likes.On("FindByID", ctx, "like-uuid").Return(stored, nil)
		likes.On("Delete", ctx, "like-uuid").Return(nil)

		svc := NewLikeService(likes, new(repoMocks.MockPostRepository))
		err := svc.Delete(ctx, Viewer{UserID: "user-uuid"}, "like-uuid")

		assert.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		likes := new(repoMocks.MockLikeRepository)
		likes.On("FindByID", ctx, "like-uuid").Return(stored, nil)

		svc := NewLikeService(likes, new(repoMocks.MockPostRepository))
		err := svc.Delete(ctx, Viewer{UserID: "other"}, "like-uuid")

		assert.ErrorIs(t, err, ErrForbidden)
	})
}
