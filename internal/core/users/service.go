package users

import (
	"context"
	"fmt"
	"strings"

	"echostream/internal/core/media"
)

type userService struct {
	userRepo UserRepository
	media    media.Store
}

// NewUserService creates a new user service.
func NewUserService(userRepo UserRepository, mediaStore media.Store) UserService {
	return &userService{
		userRepo: userRepo,
		media:    mediaStore,
	}
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &ValidationError{Field: "id", Reason: "is required"}
	}
	return s.userRepo.GetByID(ctx, id)
}

// UpdateDetails validates and persists the provided account fields.
func (s *userService) UpdateDetails(ctx context.Context, id string, input UpdateDetailsInput) (*User, error) {
	if input.DisplayName == nil && input.Email == nil {
		return nil, &ValidationError{Field: "fullName", Reason: "at least one field is required"}
	}

	if input.DisplayName != nil {
		trimmed := strings.TrimSpace(*input.DisplayName)
		if err := ValidateDisplayName(trimmed); err != nil {
			return nil, err
		}
		input.DisplayName = &trimmed
	}
	if input.Email != nil {
		trimmed := strings.ToLower(strings.TrimSpace(*input.Email))
		if err := ValidateEmail(trimmed); err != nil {
			return nil, err
		}
		input.Email = &trimmed
	}

	return s.userRepo.UpdateDetails(ctx, id, input)
}

func (s *userService) UpdateAvatar(ctx context.Context, id, localPath string) (*User, error) {
	if localPath == "" {
		return nil, &ValidationError{Field: "avatar", Reason: "file is required"}
	}

	url, err := media.UploadStaged(ctx, s.media, localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	return s.userRepo.UpdateAvatar(ctx, id, url)
}

func (s *userService) UpdateCoverImage(ctx context.Context, id, localPath string) (*User, error) {
	if localPath == "" {
		return nil, &ValidationError{Field: "coverImage", Reason: "file is required"}
	}

	url, err := media.UploadStaged(ctx, s.media, localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to upload cover image: %w", err)
	}

	return s.userRepo.UpdateCoverImage(ctx, id, url)
}
