package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"socialconnect/internal/apperr"
	"socialconnect/internal/models"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, followerID, followeeID int64) error {
	query := `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check inserted rows: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.AlreadyExistsf("user %d already follows user %d", followerID, followeeID)
	}

	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID int64) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`

	result, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.NotFoundf("follow from user %d to user %d", followerID, followeeID)
	}

	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM follows
			WHERE follower_id = $1 AND followee_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow existence: %w", err)
	}

	return exists, nil
}

// ListFollowers returns the users following userID, in edge-creation order.
func (r *followRepository) ListFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	query := `
		SELECT u.* FROM users u
		JOIN follows f ON f.follower_id = u.id
		WHERE f.followee_id = $1
		ORDER BY f.created_at ASC, f.id ASC
	`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return users, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	query := `
		SELECT u.* FROM users u
		JOIN follows f ON f.followee_id = u.id
		WHERE f.follower_id = $1
		ORDER BY f.created_at ASC, f.id ASC
	`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}

	return users, nil
}

func (r *followRepository) ListFollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT followee_id FROM follows
		WHERE follower_id = $1
		ORDER BY created_at ASC, id ASC
	`

	var ids []int64
	err := r.db.SelectContext(ctx, &ids, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following ids: %w", err)
	}

	return ids, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM follows WHERE followee_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}

	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM follows WHERE follower_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}

	return count, nil
}
