package users

import "context"

// UserRepository defines the interface for user data persistence.
// Implementations map driver-level failures to the sentinel errors in this
// package; no caller ever sees a raw database error for a domain condition.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByHandle(ctx context.Context, handle string) (*User, error)

	// GetByHandleOrEmail matches either identifier; callers pass the one(s)
	// they have and empty strings for the rest.
	GetByHandleOrEmail(ctx context.Context, handle, email string) (*User, error)

	// UpdateRefreshToken overwrites the single stored refresh-token value.
	// An empty token clears it (logout). This is a token-only write: no other
	// column is touched and no full-record validation runs.
	UpdateRefreshToken(ctx context.Context, id, token string) error

	// UpdatePassword overwrites the stored password hash.
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	UpdateDetails(ctx context.Context, id string, input UpdateDetailsInput) (*User, error)
	UpdateAvatar(ctx context.Context, id, avatarURL string) (*User, error)
	UpdateCoverImage(ctx context.Context, id, coverImageURL string) (*User, error)
}

// UserService defines the interface for profile business logic. Credential
// and session operations live in the auth package.
type UserService interface {
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateDetails(ctx context.Context, id string, input UpdateDetailsInput) (*User, error)

	// UpdateAvatar uploads the staged file to the media store and persists
	// the resulting URL. The staged file is removed whether or not the upload
	// succeeds; a failed upload never touches the user record.
	UpdateAvatar(ctx context.Context, id, localPath string) (*User, error)
	UpdateCoverImage(ctx context.Context, id, localPath string) (*User, error)
}
