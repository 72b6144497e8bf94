package likes

import "time"

// TargetKind names what a like is attached to.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
)

// Like is a user's endorsement of a video or comment.
type Like struct {
	ID        int64      `json:"id" db:"id"`
	UserID    string     `json:"userId" db:"user_id"`
	Kind      TargetKind `json:"kind" db:"target_kind"`
	TargetID  string     `json:"targetId" db:"target_id"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// ToggleResult reports the state after a toggle and the target's new count.
type ToggleResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
