package service

import (
	"context"
	"io"
	"strings"

	"socialconnect/internal/apperr"
	"socialconnect/internal/config"
	"socialconnect/internal/models"
	"socialconnect/internal/repository"
	"socialconnect/internal/storage"
)

type UpdateProfileRequest struct {
	FirstName *string
	LastName  *string
	Bio       *string
}

type UserService interface {
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*models.User, error)
	UploadProfilePicture(ctx context.Context, userID int64, fileName, contentType string, file io.Reader, size int64) (*models.User, error)
	ProfilePictureURL(ctx context.Context, userID int64) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile applies only the fields present in the request.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UploadProfilePicture(ctx context.Context, userID int64, fileName, contentType string, file io.Reader, size int64) (*models.User, error) {
	if size == 0 {
		return nil, apperr.InvalidArgumentf("file is empty")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperr.InvalidArgumentf("file must be an image")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	objectName, err := s.storage.UploadAvatar(ctx, userID, fileName, contentType, file, size)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateProfilePicture(ctx, userID, objectName); err != nil {
		// Keep the store consistent with the user row.
		_ = s.storage.RemoveAvatar(ctx, objectName)
		return nil, err
	}

	// Best effort: the old object is unreferenced either way.
	if user.ProfilePicture != "" {
		_ = s.storage.RemoveAvatar(ctx, user.ProfilePicture)
	}

	user.ProfilePicture = objectName
	return user, nil
}

func (s *userService) ProfilePictureURL(ctx context.Context, userID int64) (string, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if user.ProfilePicture == "" {
		return "", apperr.NotFoundf("user %d has no profile picture", userID)
	}

	return s.storage.AvatarURL(ctx, user.ProfilePicture)
}
