package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"echostream/internal/core/channels"
)

type postgresChannelRepo struct {
	db *sql.DB
}

// NewChannelRepository creates a new PostgreSQL channel repository
func NewChannelRepository(db *sql.DB) channels.ChannelRepository {
	return &postgresChannelRepo{db: db}
}

// GetProfileByHandle aggregates the channel summary in a single statement.
// The subscription edges are joined twice via scalar subqueries, so exactly
// one row comes back regardless of edge fan-out; only counts are projected.
func (r *postgresChannelRepo) GetProfileByHandle(ctx context.Context, handle, viewerID string) (*channels.ChannelProfile, error) {
	query := `
		SELECT
			u.id, u.display_name, u.handle, u.email, u.avatar_url, u.cover_image_url,
			(SELECT COUNT(*) FROM subscriptions WHERE channel_id = u.id) AS subscribers_count,
			(SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = u.id) AS subscribed_to_count,
			EXISTS(
				SELECT 1 FROM subscriptions
				WHERE channel_id = u.id AND subscriber_id = $2
			) AS is_subscribed
		FROM users u
		WHERE u.handle = $1`

	profile := &channels.ChannelProfile{}
	err := r.db.QueryRowContext(ctx, query, handle, viewerID).Scan(
		&profile.ID,
		&profile.DisplayName,
		&profile.Handle,
		&profile.Email,
		&profile.AvatarURL,
		&profile.CoverImageURL,
		&profile.SubscribersCount,
		&profile.SubscribedToCount,
		&profile.IsSubscribed,
	)

	if err == sql.ErrNoRows {
		return nil, channels.ErrChannelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel profile: %w", err)
	}

	return profile, nil
}

// Subscribe creates a new subscription edge. No uniqueness constraint exists
// on (subscriber, channel); duplicate edges are tolerated by the model.
func (r *postgresChannelRepo) Subscribe(ctx context.Context, sub *channels.Subscription) (*channels.Subscription, error) {
	query := `
		INSERT INTO subscriptions (subscriber_id, channel_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, sub.SubscriberID, sub.ChannelID).
		Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return nil, channels.ErrChannelNotFound
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return sub, nil
}

// Unsubscribe removes all edges from subscriber to channel
func (r *postgresChannelRepo) Unsubscribe(ctx context.Context, subscriberID, channelID string) error {
	query := `DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`

	result, err := r.db.ExecContext(ctx, query, subscriberID, channelID)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check unsubscribe result: %w", err)
	}
	if rowsAffected == 0 {
		return channels.ErrSubscriptionNotFound
	}

	return nil
}
