package service

import (
	"context"

	"socialconnect/internal/apperr"
	"socialconnect/internal/models"
	"socialconnect/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	GetFollowers(ctx context.Context, userID int64) ([]models.User, error)
	GetFollowing(ctx context.Context, userID int64) ([]models.User, error)
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)
	FollowerCount(ctx context.Context, userID int64) (int64, error)
	FollowingCount(ctx context.Context, userID int64) (int64, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the directed edge follower -> followee. A repeat call is an
// error, not a no-op.
func (s *followService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return apperr.InvalidArgumentf("cannot follow yourself")
	}

	if _, err := s.userRepo.GetUserByID(ctx, followerID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetUserByID(ctx, followeeID); err != nil {
		return err
	}

	return s.followRepo.Create(ctx, followerID, followeeID)
}

func (s *followService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if _, err := s.userRepo.GetUserByID(ctx, followerID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetUserByID(ctx, followeeID); err != nil {
		return err
	}

	return s.followRepo.Delete(ctx, followerID, followeeID)
}

func (s *followService) GetFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.followRepo.ListFollowers(ctx, userID)
}

func (s *followService) GetFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.followRepo.ListFollowing(ctx, userID)
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if _, err := s.userRepo.GetUserByID(ctx, followerID); err != nil {
		return false, err
	}
	if _, err := s.userRepo.GetUserByID(ctx, followeeID); err != nil {
		return false, err
	}

	return s.followRepo.Exists(ctx, followerID, followeeID)
}

func (s *followService) FollowerCount(ctx context.Context, userID int64) (int64, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return 0, err
	}

	return s.followRepo.CountFollowers(ctx, userID)
}

func (s *followService) FollowingCount(ctx context.Context, userID int64) (int64, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return 0, err
	}

	return s.followRepo.CountFollowing(ctx, userID)
}
