package users

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHandle(t *testing.T) {
	assert.Equal(t, "alice", NormalizeHandle("  AliCe "))
	assert.Equal(t, "", NormalizeHandle("   "))
}

func TestValidateHandle(t *testing.T) {
	tests := []struct {
		handle string
		ok     bool
	}{
		{"alice", true},
		{"a_b-c9", true},
		{"ab", false},
		{"this-handle-is-far-too-long", false},
		{"Has Upper", false},
		{"sp ace", false},
		{"dot.ted", false},
	}

	for _, tt := range tests {
		err := ValidateHandle(tt.handle)
		if tt.ok {
			assert.NoError(t, err, tt.handle)
		} else {
			assert.Error(t, err, tt.handle)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("Alice <alice@example.com>"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("1234567"))
}

func TestValidateDisplayName(t *testing.T) {
	assert.NoError(t, ValidateDisplayName("Alice Tester"))
	assert.Error(t, ValidateDisplayName("ab"))
}

func TestValidateDisplayName_CountsRunes(t *testing.T) {
	// 20 runes, 60 bytes: within bounds even though the byte length is not.
	assert.NoError(t, ValidateDisplayName(strings.Repeat("京", 20)))

	// Two runes in six bytes is still too short.
	assert.Error(t, ValidateDisplayName("京都"))

	assert.Error(t, ValidateDisplayName(strings.Repeat("京", 51)))
}
