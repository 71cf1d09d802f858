package service

import (
	"context"

	"socialconnect/internal/models"
	"socialconnect/internal/repository"
)

type CommentService interface {
	CreateComment(ctx context.Context, postID, authorID int64, content string) (*models.CommentView, error)
	GetComment(ctx context.Context, commentID int64) (*models.CommentView, error)
	UpdateComment(ctx context.Context, commentID, actingUserID int64, content string) (*models.CommentView, error)
	DeleteComment(ctx context.Context, commentID, actingUserID int64) error
	GetPostComments(ctx context.Context, postID int64) ([]models.CommentView, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) CreateComment(ctx context.Context, postID, authorID int64, content string) (*models.CommentView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return commentView(comment, author), nil
}

func (s *commentService) GetComment(ctx context.Context, commentID int64) (*models.CommentView, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetUserByID(ctx, comment.AuthorID)
	if err != nil {
		return nil, err
	}

	return commentView(comment, author), nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, actingUserID int64, content string) (*models.CommentView, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeOwner(comment.AuthorID, actingUserID); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.GetComment(ctx, commentID)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, actingUserID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err := AuthorizeOwner(comment.AuthorID, actingUserID); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// GetPostComments lists a post's comments oldest first.
func (s *commentService) GetPostComments(ctx context.Context, postID int64) ([]models.CommentView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	authors := make(map[int64]*models.User)
	views := make([]models.CommentView, 0, len(comments))

	for i := range comments {
		author, ok := authors[comments[i].AuthorID]
		if !ok {
			author, err = s.userRepo.GetUserByID(ctx, comments[i].AuthorID)
			if err != nil {
				return nil, err
			}
			authors[comments[i].AuthorID] = author
		}
		views = append(views, *commentView(&comments[i], author))
	}

	return views, nil
}

func commentView(comment *models.Comment, author *models.User) *models.CommentView {
	return &models.CommentView{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		Author:    *author,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
