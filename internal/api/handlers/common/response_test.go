package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echostream/internal/core/auth"
	"echostream/internal/core/channels"
	"echostream/internal/core/comments"
	"echostream/internal/core/likes"
	"echostream/internal/core/users"
	"echostream/internal/core/videos"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJSON_SuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"id": "1"}, "created")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, http.StatusCreated, body.StatusCode)
	assert.True(t, body.Success)
	assert.Equal(t, "created", body.Message)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Errors)
}

func TestFail_FailureEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, http.StatusUnauthorized, "not authorized")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decode(t, rec)
	assert.False(t, body.Success)
	assert.Nil(t, body.Data)
	assert.Equal(t, []string{"not authorized"}, body.Errors)
}

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", &users.ValidationError{Field: "handle", Reason: "is required"}, http.StatusBadRequest},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"reused refresh token", auth.ErrTokenReused, http.StatusUnauthorized},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", users.ErrUserNotFound, http.StatusNotFound},
		{"channel not found", channels.ErrChannelNotFound, http.StatusNotFound},
		{"subscription not found", channels.ErrSubscriptionNotFound, http.StatusNotFound},
		{"video not found", videos.ErrVideoNotFound, http.StatusNotFound},
		{"comment not found", comments.ErrCommentNotFound, http.StatusNotFound},
		{"handle taken", users.ErrHandleTaken, http.StatusConflict},
		{"email taken", users.ErrEmailTaken, http.StatusConflict},
		{"not comment owner", comments.ErrNotCommentOwner, http.StatusForbidden},
		{"self subscription", channels.ErrSelfSubscription, http.StatusBadRequest},
		{"empty comment", comments.ErrEmptyContent, http.StatusBadRequest},
		{"invalid like target", likes.ErrInvalidTarget, http.StatusBadRequest},
		{"unknown error", errors.New("driver exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tt.err)

			assert.Equal(t, tt.want, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.want, body.StatusCode)
		})
	}
}

func TestError_HidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, errors.New("pq: connection refused on 10.0.0.3"))

	body := decode(t, rec)
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}

func TestError_WrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, errors.Join(errors.New("context"), users.ErrUserNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
