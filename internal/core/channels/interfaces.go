package channels

import "context"

// ChannelRepository defines the read aggregation and the edge writes over
// the subscriptions table.
type ChannelRepository interface {
	// GetProfileByHandle runs the whole aggregation in one statement:
	// subscriber count, subscribed-to count and the viewer membership flag.
	// Returns ErrChannelNotFound when no user matches the handle.
	GetProfileByHandle(ctx context.Context, handle, viewerID string) (*ChannelProfile, error)

	Subscribe(ctx context.Context, sub *Subscription) (*Subscription, error)
	Unsubscribe(ctx context.Context, subscriberID, channelID string) error
}

// ChannelService defines channel business logic.
type ChannelService interface {
	// GetProfile resolves the channel summary for a viewer. IsSubscribed is
	// true iff the viewer appears among the channel's subscriber edges.
	GetProfile(ctx context.Context, handle, viewerID string) (*ChannelProfile, error)

	Subscribe(ctx context.Context, subscriberID, channelID string) (*Subscription, error)
	Unsubscribe(ctx context.Context, subscriberID, channelID string) error
}
