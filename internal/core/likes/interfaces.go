package likes

import "context"

// LikeRepository defines data access for likes.
type LikeRepository interface {
	// Insert records a like. Returns true when a row was created, false when
	// the user had already liked the target.
	Insert(ctx context.Context, userID string, kind TargetKind, targetID string) (bool, error)

	// Remove deletes a like. Returns true when a row was removed.
	Remove(ctx context.Context, userID string, kind TargetKind, targetID string) (bool, error)

	// Exists reports whether the user has liked the target.
	Exists(ctx context.Context, userID string, kind TargetKind, targetID string) (bool, error)

	// Count returns the target's total like count.
	Count(ctx context.Context, kind TargetKind, targetID string) (int, error)
}

// LikeService handles like business logic.
type LikeService interface {
	// Toggle flips the user's like on a target: absent creates it, present
	// removes it. Returns the resulting state.
	Toggle(ctx context.Context, userID string, kind TargetKind, targetID string) (*ToggleResult, error)
}
