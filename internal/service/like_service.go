package service

import (
	"context"

	"socialconnect/internal/repository"
)

type LikeService interface {
	Like(ctx context.Context, postID, userID int64) error
	Unlike(ctx context.Context, postID, userID int64) error
	Count(ctx context.Context, postID int64) (int64, error)
	IsLikedBy(ctx context.Context, postID, userID int64) (bool, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

func (s *likeService) Like(ctx context.Context, postID, userID int64) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	// Concurrent likes for the same (post, user) race on the unique
	// constraint; the loser gets AlreadyExists from the repository.
	return s.likeRepo.Create(ctx, postID, userID)
}

func (s *likeService) Unlike(ctx context.Context, postID, userID int64) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	return s.likeRepo.Delete(ctx, postID, userID)
}

func (s *likeService) Count(ctx context.Context, postID int64) (int64, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return 0, err
	}

	return s.likeRepo.CountByPost(ctx, postID)
}

func (s *likeService) IsLikedBy(ctx context.Context, postID, userID int64) (bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return false, err
	}

	return s.likeRepo.Exists(ctx, postID, userID)
}
