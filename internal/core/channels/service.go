package channels

import (
	"context"
	"strings"

	"echostream/internal/core/users"
)

type channelService struct {
	channelRepo ChannelRepository
}

// NewChannelService creates a new channel service.
func NewChannelService(channelRepo ChannelRepository) ChannelService {
	return &channelService{channelRepo: channelRepo}
}

func (s *channelService) GetProfile(ctx context.Context, handle, viewerID string) (*ChannelProfile, error) {
	handle = users.NormalizeHandle(handle)
	if handle == "" {
		return nil, &users.ValidationError{Field: "handle", Reason: "is required"}
	}

	return s.channelRepo.GetProfileByHandle(ctx, handle, viewerID)
}

func (s *channelService) Subscribe(ctx context.Context, subscriberID, channelID string) (*Subscription, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, &users.ValidationError{Field: "channelId", Reason: "is required"}
	}
	if subscriberID == channelID {
		return nil, ErrSelfSubscription
	}

	return s.channelRepo.Subscribe(ctx, &Subscription{
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	})
}

func (s *channelService) Unsubscribe(ctx context.Context, subscriberID, channelID string) error {
	if strings.TrimSpace(channelID) == "" {
		return &users.ValidationError{Field: "channelId", Reason: "is required"}
	}
	return s.channelRepo.Unsubscribe(ctx, subscriberID, channelID)
}
