package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"echostream/internal/core/comments"
	"echostream/internal/core/videos"
)

const commentColumns = `
	c.id, c.video_id, c.author_id, c.content, c.created_at, c.updated_at,
	a.id, a.display_name, a.handle, a.avatar_url`

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.CommentRepository {
	return &postgresCommentRepo{db: db}
}

func (r *postgresCommentRepo) Create(ctx context.Context, videoID, authorID, content string) (*comments.Comment, error) {
	id := uuid.NewString()

	query := `
		INSERT INTO comments (id, video_id, author_id, content)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, id, videoID, authorID, content); err != nil {
		if strings.Contains(err.Error(), "foreign key") && strings.Contains(err.Error(), "video") {
			return nil, videos.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresCommentRepo) GetByID(ctx context.Context, commentID string) (*comments.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		JOIN users a ON a.id = c.author_id
		WHERE c.id = $1`

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, commentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, comments.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepo) ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]comments.Comment, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM comments WHERE video_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, videoID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		JOIN users a ON a.id = c.author_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, videoID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	list := []comments.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		list = append(list, *comment)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating comments: %w", err)
	}

	return list, total, nil
}

func (r *postgresCommentRepo) UpdateContent(ctx context.Context, commentID, content string) (*comments.Comment, error) {
	query := `
		UPDATE comments
		SET content = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, comments.ErrCommentNotFound
	}

	return r.GetByID(ctx, commentID)
}

func (r *postgresCommentRepo) Delete(ctx context.Context, commentID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

func scanComment(row rowScanner) (*comments.Comment, error) {
	comment := &comments.Comment{}
	err := row.Scan(
		&comment.ID, &comment.VideoID, &comment.AuthorID, &comment.Content,
		&comment.CreatedAt, &comment.UpdatedAt,
		&comment.Author.ID, &comment.Author.DisplayName, &comment.Author.Handle,
		&comment.Author.AvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}
