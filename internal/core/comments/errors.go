package comments

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("comment does not belong to user")
	ErrEmptyContent    = errors.New("comment content is required")
	ErrContentTooLong  = errors.New("comment content exceeds maximum length")
)
