package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"echostream/internal/core/videos"
)

type postgresVideoRepo struct {
	db *sql.DB
}

// NewVideoRepository creates a new PostgreSQL video repository
func NewVideoRepository(db *sql.DB) videos.VideoRepository {
	return &postgresVideoRepo{db: db}
}

// GetWatchHistory expands the viewer's history into full video records with
// owner summaries. Inner joins against NOT NULL foreign keys guarantee
// exactly one video and exactly one owner per entry; ordering follows the
// stored position.
func (r *postgresVideoRepo) GetWatchHistory(ctx context.Context, viewerID string) ([]*videos.WatchHistoryEntry, error) {
	query := `
		SELECT
			v.id, v.owner_id, v.video_url, v.thumbnail_url, v.title, v.description,
			v.duration, v.views, v.is_published, v.created_at, v.updated_at,
			o.id, o.display_name, o.handle, o.avatar_url
		FROM watch_history wh
		JOIN videos v ON v.id = wh.video_id
		JOIN users o ON o.id = v.owner_id
		WHERE wh.user_id = $1
		ORDER BY wh.position ASC`

	rows, err := r.db.QueryContext(ctx, query, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	history := []*videos.WatchHistoryEntry{}
	for rows.Next() {
		entry := &videos.WatchHistoryEntry{}
		err := rows.Scan(
			&entry.Video.ID, &entry.Video.OwnerID, &entry.Video.VideoURL,
			&entry.Video.ThumbnailURL, &entry.Video.Title, &entry.Video.Description,
			&entry.Video.Duration, &entry.Video.Views, &entry.Video.IsPublished,
			&entry.Video.CreatedAt, &entry.Video.UpdatedAt,
			&entry.Owner.ID, &entry.Owner.DisplayName, &entry.Owner.Handle, &entry.Owner.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watch history entry: %w", err)
		}
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watch history: %w", err)
	}

	return history, nil
}

// AppendWatchHistory adds the video at the next position in the viewer's
// ordered history.
func (r *postgresVideoRepo) AppendWatchHistory(ctx context.Context, viewerID, videoID string) error {
	query := `
		INSERT INTO watch_history (user_id, video_id, position)
		SELECT $1, $2, COALESCE(MAX(position) + 1, 0)
		FROM watch_history
		WHERE user_id = $1`

	_, err := r.db.ExecContext(ctx, query, viewerID, videoID)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			if strings.Contains(err.Error(), "video") {
				return videos.ErrVideoNotFound
			}
			return fmt.Errorf("failed to append watch history: %w", err)
		}
		return fmt.Errorf("failed to append watch history: %w", err)
	}

	return nil
}
