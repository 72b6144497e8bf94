package channels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"echostream/internal/core/users"
)

type mockChannelRepository struct {
	mock.Mock
}

func (m *mockChannelRepository) GetProfileByHandle(ctx context.Context, handle, viewerID string) (*ChannelProfile, error) {
	args := m.Called(ctx, handle, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ChannelProfile), args.Error(1)
}

func (m *mockChannelRepository) Subscribe(ctx context.Context, sub *Subscription) (*Subscription, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subscription), args.Error(1)
}

func (m *mockChannelRepository) Unsubscribe(ctx context.Context, subscriberID, channelID string) error {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Error(0)
}

func TestChannelService_GetProfile(t *testing.T) {
	repo := new(mockChannelRepository)
	service := NewChannelService(repo)
	ctx := context.Background()

	expected := &ChannelProfile{
		ID:                "channel-1",
		Handle:            "alice",
		DisplayName:       "Alice",
		SubscribersCount:  3,
		SubscribedToCount: 7,
		IsSubscribed:      true,
	}
	repo.On("GetProfileByHandle", ctx, "alice", "viewer-1").Return(expected, nil)

	profile, err := service.GetProfile(ctx, "alice", "viewer-1")
	require.NoError(t, err)
	assert.Equal(t, expected, profile)
	repo.AssertExpectations(t)
}

func TestChannelService_GetProfile_NormalizesHandle(t *testing.T) {
	repo := new(mockChannelRepository)
	service := NewChannelService(repo)
	ctx := context.Background()

	repo.On("GetProfileByHandle", ctx, "alice", "viewer-1").Return(&ChannelProfile{Handle: "alice"}, nil)

	_, err := service.GetProfile(ctx, "  AliCe ", "viewer-1")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestChannelService_GetProfile_EmptyHandle(t *testing.T) {
	service := NewChannelService(new(mockChannelRepository))

	_, err := service.GetProfile(context.Background(), "   ", "viewer-1")
	var vErr *users.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestChannelService_GetProfile_NotFound(t *testing.T) {
	repo := new(mockChannelRepository)
	service := NewChannelService(repo)
	ctx := context.Background()

	repo.On("GetProfileByHandle", ctx, "ghost", "viewer-1").Return(nil, ErrChannelNotFound)

	_, err := service.GetProfile(ctx, "ghost", "viewer-1")
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestChannelService_Subscribe(t *testing.T) {
	repo := new(mockChannelRepository)
	service := NewChannelService(repo)
	ctx := context.Background()

	created := &Subscription{ID: 1, SubscriberID: "viewer-1", ChannelID: "channel-1"}
	repo.On("Subscribe", ctx, mock.MatchedBy(func(sub *Subscription) bool {
		return sub.SubscriberID == "viewer-1" && sub.ChannelID == "channel-1"
	})).Return(created, nil)

	sub, err := service.Subscribe(ctx, "viewer-1", "channel-1")
	require.NoError(t, err)
	assert.Equal(t, created, sub)
	repo.AssertExpectations(t)
}

func TestChannelService_Subscribe_Self(t *testing.T) {
	repo := new(mockChannelRepository)
	service := NewChannelService(repo)

	_, err := service.Subscribe(context.Background(), "viewer-1", "viewer-1")
	assert.ErrorIs(t, err, ErrSelfSubscription)
	repo.AssertNotCalled(t, "Subscribe")
}

func TestChannelService_Subscribe_EmptyChannel(t *testing.T) {
	service := NewChannelService(new(mockChannelRepository))

	_, err := service.Subscribe(context.Background(), "viewer-1", " ")
	var vErr *users.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestChannelService_Unsubscribe(t *testing.T) {
	repo := new(mockChannelRepository)
	service := NewChannelService(repo)
	ctx := context.Background()

	repo.On("Unsubscribe", ctx, "viewer-1", "channel-1").Return(nil)

	require.NoError(t, service.Unsubscribe(ctx, "viewer-1", "channel-1"))
	repo.AssertExpectations(t)
}

func TestChannelService_Unsubscribe_NotSubscribed(t *testing.T) {
	repo := new(mockChannelRepository)
	service := NewChannelService(repo)
	ctx := context.Background()

	repo.On("Unsubscribe", ctx, "viewer-1", "channel-1").Return(ErrSubscriptionNotFound)

	err := service.Unsubscribe(ctx, "viewer-1", "channel-1")
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}
