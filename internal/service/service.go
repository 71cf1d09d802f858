package service

import (
	"socialconnect/internal/config"
	"socialconnect/internal/repository"
	"socialconnect/internal/storage"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Post    PostService
	Comment CommentService
	Follow  FollowService
	Like    LikeService
	Feed    FeedService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, cfg),
		User:    NewUserService(rep.User, storage, cfg),
		Post:    NewPostService(rep.Post, rep.User, rep.Like),
		Comment: NewCommentService(rep.Comment, rep.Post, rep.User),
		Follow:  NewFollowService(rep.Follow, rep.User),
		Like:    NewLikeService(rep.Like, rep.Post),
		Feed:    NewFeedService(rep.Post, rep.Follow, rep.User, rep.Like),
	}
}
