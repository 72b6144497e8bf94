package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"echostream/internal/core/likes"
	"echostream/internal/core/users"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.LikeRepository {
	return &postgresLikeRepo{db: db}
}

func (r *postgresLikeRepo) Insert(ctx context.Context, userID string, kind likes.TargetKind, targetID string) (bool, error) {
	query := `
		INSERT INTO likes (user_id, target_kind, target_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, target_kind, target_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, userID, kind, targetID)
	if err != nil {
		// user_id is the table's only foreign key; target_id carries none.
		if strings.Contains(err.Error(), "foreign key") {
			return false, users.ErrUserNotFound
		}
		return false, fmt.Errorf("failed to insert like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check insert result: %w", err)
	}

	return affected > 0, nil
}

func (r *postgresLikeRepo) Remove(ctx context.Context, userID string, kind likes.TargetKind, targetID string) (bool, error) {
	query := `
		DELETE FROM likes
		WHERE user_id = $1 AND target_kind = $2 AND target_id = $3`

	result, err := r.db.ExecContext(ctx, query, userID, kind, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}

	return affected > 0, nil
}

func (r *postgresLikeRepo) Exists(ctx context.Context, userID string, kind likes.TargetKind, targetID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM likes
			WHERE user_id = $1 AND target_kind = $2 AND target_id = $3
		)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, kind, targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return exists, nil
}

func (r *postgresLikeRepo) Count(ctx context.Context, kind likes.TargetKind, targetID string) (int, error) {
	query := `SELECT COUNT(*) FROM likes WHERE target_kind = $1 AND target_id = $2`

	var count int
	if err := r.db.QueryRowContext(ctx, query, kind, targetID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}
