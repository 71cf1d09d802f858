package service

import (
	"context"

	"socialconnect/internal/models"
	"socialconnect/internal/repository"
)

type FeedService interface {
	BuildFeed(ctx context.Context, currentUserID int64) ([]models.PostView, error)
	GetAllPosts(ctx context.Context, viewerID *int64) ([]models.PostView, error)
}

type feedService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	likeRepo   repository.LikeRepository
}

func NewFeedService(postRepo repository.PostRepository, followRepo repository.FollowRepository, userRepo repository.UserRepository, likeRepo repository.LikeRepository) FeedService {
	return &feedService{
		postRepo:   postRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
		likeRepo:   likeRepo,
	}
}

// BuildFeed assembles the chronological feed for a user: posts authored by
// anyone they follow plus their own posts, newest first, each annotated with
// the current like count and whether the viewer liked it. Everything is
// recomputed per call, so the feed is read-consistent with the latest
// like state.
func (s *feedService) BuildFeed(ctx context.Context, currentUserID int64) ([]models.PostView, error) {
	if _, err := s.userRepo.GetUserByID(ctx, currentUserID); err != nil {
		return nil, err
	}

	followingIDs, err := s.followRepo.ListFollowingIDs(ctx, currentUserID)
	if err != nil {
		return nil, err
	}

	// Self-inclusion: a user who follows no one still sees their own posts.
	authorIDs := append(followingIDs, currentUserID)

	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	return composeViews(ctx, s.userRepo, s.likeRepo, posts, &currentUserID)
}

func (s *feedService) GetAllPosts(ctx context.Context, viewerID *int64) ([]models.PostView, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return composeViews(ctx, s.userRepo, s.likeRepo, posts, viewerID)
}

// composeViews annotates posts for a viewer. Authors are resolved once per
// distinct id; with a nil viewer IsLikedByViewer stays false.
func composeViews(ctx context.Context, userRepo repository.UserRepository, likeRepo repository.LikeRepository, posts []models.Post, viewerID *int64) ([]models.PostView, error) {
	authors := make(map[int64]*models.User)
	views := make([]models.PostView, 0, len(posts))

	for _, post := range posts {
		author, ok := authors[post.AuthorID]
		if !ok {
			var err error
			author, err = userRepo.GetUserByID(ctx, post.AuthorID)
			if err != nil {
				return nil, err
			}
			authors[post.AuthorID] = author
		}

		likeCount, err := likeRepo.CountByPost(ctx, post.ID)
		if err != nil {
			return nil, err
		}

		isLiked := false
		if viewerID != nil {
			isLiked, err = likeRepo.Exists(ctx, post.ID, *viewerID)
			if err != nil {
				return nil, err
			}
		}

		views = append(views, models.PostView{
			ID:              post.ID,
			Content:         post.Content,
			Author:          *author,
			LikeCount:       likeCount,
			IsLikedByViewer: isLiked,
			CreatedAt:       post.CreatedAt,
			UpdatedAt:       post.UpdatedAt,
		})
	}

	return views, nil
}
