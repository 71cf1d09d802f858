package service

import (
	"context"

	"socialconnect/internal/models"
	"socialconnect/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID int64, content string) (*models.PostView, error)
	GetPost(ctx context.Context, postID int64, viewerID *int64) (*models.PostView, error)
	UpdatePost(ctx context.Context, postID, actingUserID int64, content string) (*models.PostView, error)
	DeletePost(ctx context.Context, postID, actingUserID int64) error
	GetUserPosts(ctx context.Context, userID int64) ([]models.PostView, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	likeRepo repository.LikeRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, likeRepo repository.LikeRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		likeRepo: likeRepo,
	}
}

func (s *postService) CreatePost(ctx context.Context, authorID int64, content string) (*models.PostView, error) {
	author, err := s.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		AuthorID: authorID,
		Content:  content,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return &models.PostView{
		ID:        post.ID,
		Content:   post.Content,
		Author:    *author,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}, nil
}

func (s *postService) GetPost(ctx context.Context, postID int64, viewerID *int64) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	views, err := composeViews(ctx, s.userRepo, s.likeRepo, []models.Post{*post}, viewerID)
	if err != nil {
		return nil, err
	}

	return &views[0], nil
}

func (s *postService) UpdatePost(ctx context.Context, postID, actingUserID int64, content string) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeOwner(post.AuthorID, actingUserID); err != nil {
		return nil, err
	}

	post.Content = content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, postID, &actingUserID)
}

func (s *postService) DeletePost(ctx context.Context, postID, actingUserID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := AuthorizeOwner(post.AuthorID, actingUserID); err != nil {
		return err
	}

	// The repository removes dependent likes and comments in the same
	// transaction.
	return s.postRepo.Delete(ctx, postID)
}

func (s *postService) GetUserPosts(ctx context.Context, userID int64) ([]models.PostView, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return composeViews(ctx, s.userRepo, s.likeRepo, posts, &userID)
}
