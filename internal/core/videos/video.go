package videos

import "time"

// Video is a published media record. The core reads these; upload and
// publishing are handled elsewhere.
type Video struct {
	ID           string    `json:"id" db:"id"`
	OwnerID      string    `json:"ownerId" db:"owner_id"`
	VideoURL     string    `json:"videoFile" db:"video_url"`
	ThumbnailURL string    `json:"thumbnailFile" db:"thumbnail_url"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Duration     float64   `json:"duration" db:"duration"`
	Views        int64     `json:"views" db:"views"`
	IsPublished  bool      `json:"isPublished" db:"is_published"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// OwnerSummary is the projected owner of a watched video. Each history entry
// expands to exactly one summary, never an array.
type OwnerSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"fullName"`
	Handle      string `json:"handle"`
	AvatarURL   string `json:"avatarUrl"`
}

// WatchHistoryEntry is one expanded item of a viewer's watch history, in the
// viewer's stored order.
type WatchHistoryEntry struct {
	Video Video        `json:"video"`
	Owner OwnerSummary `json:"owner"`
}
