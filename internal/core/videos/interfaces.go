package videos

import "context"

// VideoRepository defines the watch-history reads and writes.
type VideoRepository interface {
	// GetWatchHistory expands the viewer's ordered video references into
	// full records with owner summaries, preserving the stored order. The
	// owner join is exactly-one by constraint; a missing owner is a data
	// corruption error, not an empty field.
	GetWatchHistory(ctx context.Context, viewerID string) ([]*WatchHistoryEntry, error)

	// AppendWatchHistory adds a video to the end of the viewer's history.
	AppendWatchHistory(ctx context.Context, viewerID, videoID string) error
}

// VideoService defines watch-history business logic.
type VideoService interface {
	// GetWatchHistory fails with users.ErrUserNotFound when the viewer
	// record is absent.
	GetWatchHistory(ctx context.Context, viewerID string) ([]*WatchHistoryEntry, error)

	RecordView(ctx context.Context, viewerID, videoID string) error
}
