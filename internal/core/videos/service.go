package videos

import (
	"context"
	"strings"

	"echostream/internal/core/users"
)

type videoService struct {
	videoRepo VideoRepository
	userRepo  users.UserRepository
}

// NewVideoService creates a new video service.
func NewVideoService(videoRepo VideoRepository, userRepo users.UserRepository) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		userRepo:  userRepo,
	}
}

func (s *videoService) GetWatchHistory(ctx context.Context, viewerID string) ([]*WatchHistoryEntry, error) {
	if strings.TrimSpace(viewerID) == "" {
		return nil, &users.ValidationError{Field: "viewerId", Reason: "is required"}
	}

	// The viewer must exist; an empty history is a valid result, a missing
	// viewer is not.
	if _, err := s.userRepo.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	return s.videoRepo.GetWatchHistory(ctx, viewerID)
}

func (s *videoService) RecordView(ctx context.Context, viewerID, videoID string) error {
	if strings.TrimSpace(videoID) == "" {
		return &users.ValidationError{Field: "videoId", Reason: "is required"}
	}
	return s.videoRepo.AppendWatchHistory(ctx, viewerID, videoID)
}
