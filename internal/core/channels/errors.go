package channels

import "errors"

var (
	// ErrChannelNotFound is returned when no user matches the channel handle or id
	ErrChannelNotFound = errors.New("channel not found")

	// ErrSubscriptionNotFound is returned when unsubscribing without an edge
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrSelfSubscription is returned when a user subscribes to their own channel
	ErrSelfSubscription = errors.New("cannot subscribe to your own channel")
)
