package comments

import (
	"strings"
	"time"

	"echostream/internal/core/videos"
)

const maxContentLength = 2000

// Comment is a viewer-visible remark attached to a video.
type Comment struct {
	ID        string              `json:"id" db:"id"`
	VideoID   string              `json:"videoId" db:"video_id"`
	AuthorID  string              `json:"-" db:"author_id"`
	Content   string              `json:"content" db:"content"`
	Author    videos.OwnerSummary `json:"author"`
	CreatedAt time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time           `json:"updatedAt" db:"updated_at"`
}

// CommentPage is one page of a video's comments, newest first.
type CommentPage struct {
	Comments   []Comment `json:"comments"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalCount int       `json:"totalCount"`
}

// ValidateContent rejects empty or oversized comment bodies.
func ValidateContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ErrEmptyContent
	}
	if len(trimmed) > maxContentLength {
		return ErrContentTooLong
	}
	return nil
}
