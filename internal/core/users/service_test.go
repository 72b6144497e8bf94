package users

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *User) (*User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) GetByHandle(ctx context.Context, handle string) (*User, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) GetByHandleOrEmail(ctx context.Context, handle, email string) (*User, error) {
	args := m.Called(ctx, handle, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) UpdateRefreshToken(ctx context.Context, id, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *mockUserRepository) UpdateDetails(ctx context.Context, id string, input UpdateDetailsInput) (*User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) UpdateAvatar(ctx context.Context, id, avatarURL string) (*User, error) {
	args := m.Called(ctx, id, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) UpdateCoverImage(ctx context.Context, id, coverImageURL string) (*User, error) {
	args := m.Called(ctx, id, coverImageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

type stubStore struct {
	url string
	err error
}

func (s *stubStore) Upload(ctx context.Context, localPath string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func stageTempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.png")
	require.NoError(t, os.WriteFile(path, []byte("bytes"), 0o644))
	return path
}

func TestUserService_GetByID(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, &stubStore{})
	ctx := context.Background()

	expected := &User{ID: "user-1", Handle: "alice"}
	repo.On("GetByID", ctx, "user-1").Return(expected, nil)

	got, err := service.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestUserService_GetByID_EmptyID(t *testing.T) {
	service := NewUserService(new(mockUserRepository), &stubStore{})

	_, err := service.GetByID(context.Background(), " ")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestUserService_UpdateDetails(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, &stubStore{})
	ctx := context.Background()

	name := "  New Name  "
	email := " NEW@Example.com "
	updated := &User{ID: "user-1", DisplayName: "New Name", Email: "new@example.com"}

	repo.On("UpdateDetails", ctx, "user-1", mock.MatchedBy(func(input UpdateDetailsInput) bool {
		return input.DisplayName != nil && *input.DisplayName == "New Name" &&
			input.Email != nil && *input.Email == "new@example.com"
	})).Return(updated, nil)

	got, err := service.UpdateDetails(ctx, "user-1", UpdateDetailsInput{DisplayName: &name, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.DisplayName)
	repo.AssertExpectations(t)
}

func TestUserService_UpdateDetails_Validation(t *testing.T) {
	service := NewUserService(new(mockUserRepository), &stubStore{})
	ctx := context.Background()

	short := "ab"
	badEmail := "nope"

	tests := []struct {
		name  string
		input UpdateDetailsInput
	}{
		{"no fields", UpdateDetailsInput{}},
		{"short display name", UpdateDetailsInput{DisplayName: &short}},
		{"invalid email", UpdateDetailsInput{Email: &badEmail}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.UpdateDetails(ctx, "user-1", tt.input)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestUserService_UpdateAvatar(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, &stubStore{url: "https://cdn.test/avatar.png"})
	ctx := context.Background()

	staged := stageTempFile(t)
	updated := &User{ID: "user-1", AvatarURL: "https://cdn.test/avatar.png"}
	repo.On("UpdateAvatar", ctx, "user-1", "https://cdn.test/avatar.png").Return(updated, nil)

	got, err := service.UpdateAvatar(ctx, "user-1", staged)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/avatar.png", got.AvatarURL)

	// The staged file is gone after the upload.
	_, statErr := os.Stat(staged)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUserService_UpdateAvatar_UploadFails(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, &stubStore{err: fmt.Errorf("store unavailable")})
	ctx := context.Background()

	staged := stageTempFile(t)
	_, err := service.UpdateAvatar(ctx, "user-1", staged)
	require.Error(t, err)

	// A failed upload never reaches the repository and still cleans up.
	repo.AssertNotCalled(t, "UpdateAvatar")
	_, statErr := os.Stat(staged)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUserService_UpdateCoverImage(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, &stubStore{url: "https://cdn.test/cover.png"})
	ctx := context.Background()

	staged := stageTempFile(t)
	updated := &User{ID: "user-1", CoverImageURL: "https://cdn.test/cover.png"}
	repo.On("UpdateCoverImage", ctx, "user-1", "https://cdn.test/cover.png").Return(updated, nil)

	got, err := service.UpdateCoverImage(ctx, "user-1", staged)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/cover.png", got.CoverImageURL)
}

func TestUserService_UpdateMedia_MissingPath(t *testing.T) {
	service := NewUserService(new(mockUserRepository), &stubStore{})
	ctx := context.Background()

	_, err := service.UpdateAvatar(ctx, "user-1", "")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = service.UpdateCoverImage(ctx, "user-1", "")
	assert.ErrorAs(t, err, &vErr)
}

func TestProfile_OmitsCredentialFields(t *testing.T) {
	u := &User{
		ID:           "user-1",
		Handle:       "alice",
		Email:        "alice@example.com",
		PasswordHash: "bcrypt-hash",
		RefreshToken: "stored-token",
	}

	p := u.Profile()
	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, u.Handle, p.Handle)
	assert.Equal(t, u.Email, p.Email)
}
