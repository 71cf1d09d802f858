package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"socialconnect/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdateProfilePicture(ctx context.Context, userID int64, picture string) error
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID int64, refreshToken *string, expiryTime *time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []int64) ([]models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID int64) error
}

type LikeRepository interface {
	Create(ctx context.Context, postID, userID int64) error
	Delete(ctx context.Context, postID, userID int64) error
	CountByPost(ctx context.Context, postID int64) (int64, error)
	Exists(ctx context.Context, postID, userID int64) (bool, error)
}

type FollowRepository interface {
	Create(ctx context.Context, followerID, followeeID int64) error
	Delete(ctx context.Context, followerID, followeeID int64) error
	Exists(ctx context.Context, followerID, followeeID int64) (bool, error)
	ListFollowers(ctx context.Context, userID int64) ([]models.User, error)
	ListFollowing(ctx context.Context, userID int64) ([]models.User, error)
	ListFollowingIDs(ctx context.Context, userID int64) ([]int64, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollowing(ctx context.Context, userID int64) (int64, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Like    LikeRepository
	Follow  FollowRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Like:    NewLikeRepository(db),
		Follow:  NewFollowRepository(db),
	}
}
