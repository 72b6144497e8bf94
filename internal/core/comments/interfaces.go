package comments

import "context"

// CommentRepository defines data access for video comments.
type CommentRepository interface {
	// Create inserts a comment and returns it with author info hydrated.
	Create(ctx context.Context, videoID, authorID, content string) (*Comment, error)

	// GetByID retrieves a single comment. Returns ErrCommentNotFound when absent.
	GetByID(ctx context.Context, commentID string) (*Comment, error)

	// ListByVideo returns one page of a video's comments ordered newest first,
	// plus the total count for the video.
	ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]Comment, int, error)

	// UpdateContent replaces a comment's content.
	UpdateContent(ctx context.Context, commentID, content string) (*Comment, error)

	// Delete removes a comment. Returns ErrCommentNotFound when absent.
	Delete(ctx context.Context, commentID string) error
}

// CommentService handles comment business logic.
type CommentService interface {
	AddComment(ctx context.Context, videoID, authorID, content string) (*Comment, error)
	GetVideoComments(ctx context.Context, videoID string, page, limit int) (*CommentPage, error)
	UpdateComment(ctx context.Context, commentID, requesterID, content string) (*Comment, error)
	DeleteComment(ctx context.Context, commentID, requesterID string) error
}
