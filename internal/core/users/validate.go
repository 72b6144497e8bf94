package users

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Handles are lowercase alphanumeric plus underscores and hyphens.
var handleRegex = regexp.MustCompile(`^[a-z0-9_-]+$`)

const (
	handleMinLen      = 3
	handleMaxLen      = 20
	displayNameMinLen = 3
	displayNameMaxLen = 50
	passwordMinLen    = 8
)

// NormalizeHandle trims and case-folds a handle the way it is persisted.
func NormalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimSpace(handle))
}

// ValidateHandle checks the normalized handle against length and charset
// rules. Callers should normalize first.
func ValidateHandle(handle string) error {
	if len(handle) < handleMinLen || len(handle) > handleMaxLen {
		return &ValidationError{Field: "handle", Reason: "must be between 3 and 20 characters"}
	}
	if !handleRegex.MatchString(handle) {
		return &ValidationError{Field: "handle", Reason: "must contain only lowercase letters, digits, underscores and hyphens"}
	}
	return nil
}

// ValidateDisplayName checks the display name length bounds. Display names
// may contain arbitrary Unicode, so the bounds count runes rather than bytes.
func ValidateDisplayName(name string) error {
	if n := utf8.RuneCountInString(name); n < displayNameMinLen || n > displayNameMaxLen {
		return &ValidationError{Field: "fullName", Reason: "must be between 3 and 50 characters"}
	}
	return nil
}

// ValidateEmail checks the address parses as a single RFC 5322 mailbox.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}

// ValidatePassword checks the minimum source length. Strength policy beyond
// length is out of scope.
func ValidatePassword(password string) error {
	if len(password) < passwordMinLen {
		return &ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	return nil
}
