package comments

import "context"

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type commentService struct {
	commentRepo CommentRepository
}

// NewCommentService creates a new comment service instance.
func NewCommentService(commentRepo CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) AddComment(ctx context.Context, videoID, authorID, content string) (*Comment, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}
	return s.commentRepo.Create(ctx, videoID, authorID, content)
}

func (s *commentService) GetVideoComments(ctx context.Context, videoID string, page, limit int) (*CommentPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	offset := (page - 1) * limit
	list, total, err := s.commentRepo.ListByVideo(ctx, videoID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &CommentPage{
		Comments:   list,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
	}, nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, requesterID, content string) (*Comment, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	existing, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != requesterID {
		return nil, ErrNotCommentOwner
	}

	return s.commentRepo.UpdateContent(ctx, commentID, content)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, requesterID string) error {
	existing, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if existing.AuthorID != requesterID {
		return ErrNotCommentOwner
	}

	return s.commentRepo.Delete(ctx, commentID)
}
