package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialconnect/internal/apperr"
	"socialconnect/internal/models"
)

func TestFeedService_BuildFeed(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	alice := &models.User{ID: 1, Username: "alice"}
	bob := &models.User{ID: 2, Username: "bob"}

	t.Run("feed includes followed authors and the user themselves", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		likeRepo := new(MockLikeRepository)
		svc := NewFeedService(postRepo, followRepo, userRepo, likeRepo)

		// Alice follows Bob; the query must cover Bob's posts and her own.
		posts := []models.Post{
			{ID: 21, AuthorID: 1, Content: "mine", CreatedAt: now},
			{ID: 20, AuthorID: 2, Content: "bobs", CreatedAt: now.Add(-time.Minute)},
		}

		userRepo.On("GetUserByID", ctx, int64(1)).Return(alice, nil)
		userRepo.On("GetUserByID", ctx, int64(2)).Return(bob, nil)
		followRepo.On("ListFollowingIDs", ctx, int64(1)).Return([]int64{2}, nil)
		postRepo.On("ListByAuthors", ctx, []int64{2, 1}).Return(posts, nil)
		likeRepo.On("CountByPost", ctx, int64(21)).Return(int64(0), nil)
		likeRepo.On("CountByPost", ctx, int64(20)).Return(int64(0), nil)
		likeRepo.On("Exists", ctx, int64(21), int64(1)).Return(false, nil)
		likeRepo.On("Exists", ctx, int64(20), int64(1)).Return(false, nil)

		feed, err := svc.BuildFeed(ctx, 1)

		require.NoError(t, err)
		require.Len(t, feed, 2)
		assert.Equal(t, int64(21), feed[0].ID)
		assert.Equal(t, "alice", feed[0].Author.Username)
		assert.Equal(t, int64(20), feed[1].ID)
		assert.Equal(t, "bob", feed[1].Author.Username)
		postRepo.AssertExpectations(t)
	})

	t.Run("user following no one still sees their own posts", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		likeRepo := new(MockLikeRepository)
		svc := NewFeedService(postRepo, followRepo, userRepo, likeRepo)

		userRepo.On("GetUserByID", ctx, int64(1)).Return(alice, nil)
		followRepo.On("ListFollowingIDs", ctx, int64(1)).Return([]int64{}, nil)
		postRepo.On("ListByAuthors", ctx, []int64{1}).
			Return([]models.Post{{ID: 21, AuthorID: 1, Content: "mine", CreatedAt: now}}, nil)
		likeRepo.On("CountByPost", ctx, int64(21)).Return(int64(0), nil)
		likeRepo.On("Exists", ctx, int64(21), int64(1)).Return(false, nil)

		feed, err := svc.BuildFeed(ctx, 1)

		require.NoError(t, err)
		require.Len(t, feed, 1)
		assert.Equal(t, int64(21), feed[0].ID)
	})

	t.Run("posts are annotated with like count and viewer like state", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		likeRepo := new(MockLikeRepository)
		svc := NewFeedService(postRepo, followRepo, userRepo, likeRepo)

		// Bob posted once and Alice liked it.
		userRepo.On("GetUserByID", ctx, int64(1)).Return(alice, nil)
		userRepo.On("GetUserByID", ctx, int64(2)).Return(bob, nil)
		followRepo.On("ListFollowingIDs", ctx, int64(1)).Return([]int64{2}, nil)
		postRepo.On("ListByAuthors", ctx, []int64{2, 1}).
			Return([]models.Post{{ID: 20, AuthorID: 2, Content: "bobs", CreatedAt: now}}, nil)
		likeRepo.On("CountByPost", ctx, int64(20)).Return(int64(1), nil)
		likeRepo.On("Exists", ctx, int64(20), int64(1)).Return(true, nil)

		feed, err := svc.BuildFeed(ctx, 1)

		require.NoError(t, err)
		require.Len(t, feed, 1)
		assert.Equal(t, int64(1), feed[0].LikeCount)
		assert.True(t, feed[0].IsLikedByViewer)
	})

	t.Run("feed for a missing user is NotFound", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		likeRepo := new(MockLikeRepository)
		svc := NewFeedService(postRepo, followRepo, userRepo, likeRepo)

		userRepo.On("GetUserByID", ctx, int64(99)).
			Return(nil, apperr.NotFoundf("user 99 not found"))

		_, err := svc.BuildFeed(ctx, 99)

		assert.ErrorIs(t, err, apperr.ErrNotFound)
		followRepo.AssertNotCalled(t, "ListFollowingIDs")
	})
}

func TestFeedService_GetAllPosts(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	bob := &models.User{ID: 2, Username: "bob"}

	t.Run("anonymous viewer never sees IsLikedByViewer set", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		likeRepo := new(MockLikeRepository)
		svc := NewFeedService(postRepo, followRepo, userRepo, likeRepo)

		postRepo.On("ListAll", ctx).
			Return([]models.Post{{ID: 20, AuthorID: 2, Content: "bobs", CreatedAt: now}}, nil)
		userRepo.On("GetUserByID", ctx, int64(2)).Return(bob, nil)
		likeRepo.On("CountByPost", ctx, int64(20)).Return(int64(7), nil)

		views, err := svc.GetAllPosts(ctx, nil)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, int64(7), views[0].LikeCount)
		assert.False(t, views[0].IsLikedByViewer)
		likeRepo.AssertNotCalled(t, "Exists")
	})

	t.Run("author is resolved once per distinct id", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		likeRepo := new(MockLikeRepository)
		svc := NewFeedService(postRepo, followRepo, userRepo, likeRepo)

		posts := []models.Post{
			{ID: 22, AuthorID: 2, Content: "second", CreatedAt: now},
			{ID: 20, AuthorID: 2, Content: "first", CreatedAt: now.Add(-time.Hour)},
		}
		postRepo.On("ListAll", ctx).Return(posts, nil)
		userRepo.On("GetUserByID", ctx, int64(2)).Return(bob, nil).Once()
		likeRepo.On("CountByPost", ctx, int64(22)).Return(int64(0), nil)
		likeRepo.On("CountByPost", ctx, int64(20)).Return(int64(0), nil)

		views, err := svc.GetAllPosts(ctx, nil)

		require.NoError(t, err)
		require.Len(t, views, 2)
		userRepo.AssertExpectations(t)
	})
}
