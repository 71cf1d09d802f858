package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialconnect/internal/models"
	"socialconnect/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Logout(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, authorID int64, content string) (*models.PostView, error) {
	args := m.Called(ctx, authorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostView), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID int64, viewerID *int64) (*models.PostView, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostView), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, postID, actingUserID int64, content string) (*models.PostView, error) {
	args := m.Called(ctx, postID, actingUserID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostView), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID, actingUserID int64) error {
	args := m.Called(ctx, postID, actingUserID)
	return args.Error(0)
}

func (m *MockPostService) GetUserPosts(ctx context.Context, userID int64) ([]models.PostView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostView), args.Error(1)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) BuildFeed(ctx context.Context, currentUserID int64) ([]models.PostView, error) {
	args := m.Called(ctx, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostView), args.Error(1)
}

func (m *MockFeedService) GetAllPosts(ctx context.Context, viewerID *int64) ([]models.PostView, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostView), args.Error(1)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) Like(ctx context.Context, postID, userID int64) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockLikeService) Unlike(ctx context.Context, postID, userID int64) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockLikeService) Count(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeService) IsLikedBy(ctx context.Context, postID, userID int64) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, followerID, followeeID int64) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowService) GetFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowService) GetFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowService) FollowerCount(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowService) FollowingCount(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
