package auth

import "errors"

var (
	// ErrMissingToken is returned when no credential accompanies a request
	// that requires one.
	ErrMissingToken = errors.New("missing authentication token")

	// ErrInvalidToken covers a bad signature, an expired token and malformed
	// input alike. Expiry is a signaled failure, never a silent nil.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrTokenReused is returned when a syntactically valid refresh token no
	// longer matches the stored value: it was rotated out by a later
	// login/refresh, or cleared by logout.
	ErrTokenReused = errors.New("refresh token expired or reused")

	// ErrInvalidCredentials is returned on a password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
