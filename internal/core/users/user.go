package users

import (
	"time"
)

// Default media URLs applied when a user has not uploaded their own.
const (
	DefaultAvatarURL     = "https://i.postimg.cc/L4bCVw9Y/Avatar.png"
	DefaultCoverImageURL = "https://i.postimg.cc/5Ny1khWw/Cover-Image.png"
)

// User is the persisted identity record. PasswordHash and RefreshToken never
// leave the store layer in API responses; use Profile() for anything
// user-facing.
type User struct {
	ID            string    `json:"id" db:"id"`
	Handle        string    `json:"handle" db:"handle"`
	Email         string    `json:"email" db:"email"`
	DisplayName   string    `json:"displayName" db:"display_name"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	AvatarURL     string    `json:"avatarUrl" db:"avatar_url"`
	CoverImageURL string    `json:"coverImageUrl" db:"cover_image_url"`
	RefreshToken  string    `json:"-" db:"refresh_token"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// Profile is the public-safe projection of a User: everything except the
// password hash and the stored refresh token.
type Profile struct {
	ID            string    `json:"id"`
	Handle        string    `json:"handle"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"displayName"`
	AvatarURL     string    `json:"avatarUrl"`
	CoverImageURL string    `json:"coverImageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Profile returns the sanitized projection of the user.
func (u *User) Profile() *Profile {
	return &Profile{
		ID:            u.ID,
		Handle:        u.Handle,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		AvatarURL:     u.AvatarURL,
		CoverImageURL: u.CoverImageURL,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// UpdateDetailsInput carries the mutable account fields. Nil means "leave
// unchanged".
type UpdateDetailsInput struct {
	DisplayName *string `json:"fullName,omitempty"`
	Email       *string `json:"email,omitempty"`
}
