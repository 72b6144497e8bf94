package auth

import (
	"context"

	"echostream/internal/core/users"
)

// RegisterRequest is the input for account creation. AvatarPath and
// CoverImagePath reference locally staged uploads.
type RegisterRequest struct {
	Handle         string
	Email          string
	DisplayName    string
	Password       string
	AvatarPath     string
	CoverImagePath string
}

// LoginRequest identifies the account by handle or email.
type LoginRequest struct {
	Handle   string
	Email    string
	Password string
}

// TokenPair is a freshly issued access/refresh pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult carries the sanitized profile alongside the new token pair.
type LoginResult struct {
	User   *users.Profile `json:"user"`
	Tokens TokenPair      `json:"-"`
}

// Service orchestrates the session lifecycle over the credential store and
// the token issuer.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*users.Profile, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)

	// Refresh rotates the stored refresh token after verifying both the
	// token itself and that it matches the single stored value.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout clears the stored refresh token; the caller is already
	// authenticated by the session gate.
	Logout(ctx context.Context, userID string) error

	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}
