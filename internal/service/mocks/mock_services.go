package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"pulse/internal/model"
	"pulse/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*service.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id string, in service.UserUpdateInput) (*model.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) List(ctx context.Context, v service.Viewer) ([]model.Profile, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *MockProfileService) Get(ctx context.Context, idOrUsername string) (*model.Profile, error) {
	args := m.Called(ctx, idOrUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateBio(ctx context.Context, v service.Viewer, idOrUsername, bio string) (*model.Profile, error) {
	args := m.Called(ctx, v, idOrUsername, bio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) List(ctx context.Context, v service.Viewer, f service.PostListFilter) (*service.PostListResult, error) {
	args := m.Called(ctx, v, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostListResult), args.Error(1)
}

func (m *MockPostService) Create(ctx context.Context, v service.Viewer, content string, scheduledAt *time.Time) (*service.CreateResult, error) {
	args := m.Called(ctx, v, content, scheduledAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CreateResult), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, v service.Viewer, id, content string) (*model.Post, error) {
	args := m.Called(ctx, v, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, v service.Viewer, id string) error {
	args := m.Called(ctx, v, id)
	return args.Error(0)
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, v service.Viewer, targetUserID string) (*model.Follow, error) {
	args := m.Called(ctx, v, targetUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *MockFollowService) List(ctx context.Context, v service.Viewer) ([]model.Follow, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Follow), args.Error(1)
}

func (m *MockFollowService) Get(ctx context.Context, id string) (*model.Follow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *MockFollowService) Delete(ctx context.Context, v service.Viewer, id string) error {
	args := m.Called(ctx, v, id)
	return args.Error(0)
}

func (m *MockFollowService) Unfollow(ctx context.Context, v service.Viewer, targetUserID string) error {
	args := m.Called(ctx, v, targetUserID)
	return args.Error(0)
}

func (m *MockFollowService) Following(ctx context.Context, userID string) ([]model.UserRef, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserRef), args.Error(1)
}

func (m *MockFollowService) Followers(ctx context.Context, userID string) ([]model.UserRef, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserRef), args.Error(1)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) Like(ctx context.Context, v service.Viewer, postID string) (*model.Like, error) {
	args := m.Called(ctx, v, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeService) List(ctx context.Context, v service.Viewer, f service.LikeListFilter) ([]model.Like, error) {
	args := m.Called(ctx, v, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Like), args.Error(1)
}

func (m *MockLikeService) Get(ctx context.Context, id string) (*model.Like, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeService) Delete(ctx context.Context, v service.Viewer, id string) error {
	args := m.Called(ctx, v, id)
	return args.Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Comment(ctx context.Context, v service.Viewer, postID, content string) (*model.Comment, error) {
	args := m.Called(ctx, v, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentService) List(ctx context.Context, v service.Viewer, f service.CommentListFilter) ([]model.Comment, error) {
	args := m.Called(ctx, v, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentService) Get(ctx context.Context, id string) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, v service.Viewer, id, content string) (*model.Comment, error) {
	args := m.Called(ctx, v, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, v service.Viewer, id string) error {
	args := m.Called(ctx, v, id)
	return args.Error(0)
}
