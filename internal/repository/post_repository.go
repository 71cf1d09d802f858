package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialconnect/internal/apperr"
	"socialconnect/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (author_id, content)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query, post.AuthorID, post.Content).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("post with id %d", postID)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC, id DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}

	return posts, nil
}

// ListByAuthors is the feed query: every post whose author is in the given
// set, newest first.
func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []int64) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT * FROM posts
		WHERE author_id = ANY($1)
		ORDER BY created_at DESC, id DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, pq.Array(authorIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list feed posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		ORDER BY created_at DESC, id DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET content = :content, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.NotFoundf("post with id %d", post.ID)
	}

	return nil
}

// Delete removes the post and its dependent likes and comments in a single
// transaction.
func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM likes WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to delete post likes: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.NotFoundf("post with id %d", postID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post deletion: %w", err)
	}

	return nil
}
