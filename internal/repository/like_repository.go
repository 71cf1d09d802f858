package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"socialconnect/internal/apperr"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts a like. The unique constraint on (post_id, user_id) is the
// arbiter for concurrent likes: exactly one writer inserts a row, the rest
// see zero rows affected.
func (r *likeRepository) Create(ctx context.Context, postID, userID int64) error {
	query := `
		INSERT INTO likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check inserted rows: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.AlreadyExistsf("post %d already liked by user %d", postID, userID)
	}

	return nil
}

func (r *likeRepository) Delete(ctx context.Context, postID, userID int64) error {
	query := `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.NotFoundf("like for post %d by user %d", postID, userID)
	}

	return nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM likes WHERE post_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}

func (r *likeRepository) Exists(ctx context.Context, postID, userID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM likes
			WHERE post_id = $1 AND user_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}

	return exists, nil
}
