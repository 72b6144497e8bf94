package channels

import "time"

// ChannelProfile is the aggregated channel summary: the user record joined
// against the subscription edges twice, plus the viewer-derived flag. Only
// counts are exposed, never the raw edge rows, so join fan-out cannot
// duplicate output.
type ChannelProfile struct {
	ID                string `json:"id"`
	DisplayName       string `json:"fullName"`
	Handle            string `json:"handle"`
	Email             string `json:"email"`
	AvatarURL         string `json:"avatarUrl"`
	CoverImageURL     string `json:"coverImageUrl"`
	SubscribersCount  int    `json:"subscribersCount"`
	SubscribedToCount int    `json:"subscribedToCount"`
	IsSubscribed      bool   `json:"isSubscribed"`
}

// Subscription is a directed edge: subscriber follows channel. The model
// tolerates duplicate edges; counts report raw rows.
type Subscription struct {
	ID           int64     `json:"id"`
	SubscriberID string    `json:"subscriberId"`
	ChannelID    string    `json:"channelId"`
	CreatedAt    time.Time `json:"createdAt"`
}
