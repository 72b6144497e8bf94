package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"echostream/internal/core/media"
	"echostream/internal/core/users"
)

type authService struct {
	userRepo users.UserRepository
	tokens   *TokenIssuer
	hasher   PasswordHasher
	media    media.Store
}

// NewAuthService creates the auth workflow service.
func NewAuthService(userRepo users.UserRepository, tokens *TokenIssuer, hasher PasswordHasher, mediaStore media.Store) Service {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		media:    mediaStore,
	}
}

// Register validates the four required fields, uploads both staged media
// files and persists the user with a hashed password. Nothing is written to
// the store until both inputs and media references have passed validation.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*users.Profile, error) {
	req.Handle = users.NormalizeHandle(req.Handle)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.DisplayName = strings.TrimSpace(req.DisplayName)

	if req.Handle == "" || req.Email == "" || req.DisplayName == "" || strings.TrimSpace(req.Password) == "" {
		return nil, &users.ValidationError{Field: "request", Reason: "all fields are required"}
	}
	if err := users.ValidateHandle(req.Handle); err != nil {
		return nil, err
	}
	if err := users.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := users.ValidateDisplayName(req.DisplayName); err != nil {
		return nil, err
	}
	if err := users.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	if req.AvatarPath == "" {
		return nil, &users.ValidationError{Field: "avatar", Reason: "file is required"}
	}
	if req.CoverImagePath == "" {
		return nil, &users.ValidationError{Field: "coverImage", Reason: "file is required"}
	}

	if _, err := s.userRepo.GetByHandle(ctx, req.Handle); err == nil {
		return nil, users.ErrHandleTaken
	} else if !errors.Is(err, users.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check handle availability: %w", err)
	}

	avatarURL, err := media.UploadStaged(ctx, s.media, req.AvatarPath)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}
	coverURL, err := media.UploadStaged(ctx, s.media, req.CoverImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to upload cover image: %w", err)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users.User{
		Handle:        req.Handle,
		Email:         req.Email,
		DisplayName:   req.DisplayName,
		PasswordHash:  passwordHash,
		AvatarURL:     avatarURL,
		CoverImageURL: coverURL,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return created.Profile(), nil
}

// Login verifies credentials, issues a fresh token pair and rotates the
// stored refresh token, invalidating any prior session's refresh capability.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	req.Handle = users.NormalizeHandle(req.Handle)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Handle == "" && req.Email == "" {
		return nil, &users.ValidationError{Field: "handle", Reason: "handle or email is required"}
	}

	user, err := s.userRepo.GetByHandleOrEmail(ctx, req.Handle, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issueAndStorePair(ctx, user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user.Profile(), Tokens: *pair}, nil
}

// Refresh validates the presented token, detects reuse of a rotated-out
// value and rotates again on success.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID())
	if err != nil {
		return nil, err
	}

	// A signed, unexpired token is still rejected when it is not the single
	// stored value: a later login or refresh rotated it out.
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, ErrTokenReused
	}

	return s.issueAndStorePair(ctx, user)
}

// Logout clears the stored refresh token. No token verification happens
// here; the session gate already ran.
func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, ""); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// ChangePassword re-verifies the old password and persists a new hash. The
// stored refresh token is intentionally left in place.
func (s *authService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, oldPassword); err != nil {
		return ErrInvalidCredentials
	}

	if err := users.ValidatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// issueAndStorePair mints a new access/refresh pair and overwrites the
// stored refresh token. Every call rotates: at most one refresh token is
// valid per user at any time.
func (s *authService) issueAndStorePair(ctx context.Context, user *users.User) (*TokenPair, error) {
	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
