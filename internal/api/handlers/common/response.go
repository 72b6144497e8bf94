package common

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"echostream/internal/core/auth"
	"echostream/internal/core/channels"
	"echostream/internal/core/comments"
	"echostream/internal/core/likes"
	"echostream/internal/core/users"
	"echostream/internal/core/videos"
)

// Response is the uniform envelope every endpoint returns. Failures carry
// data:null and success:false; successes omit the errors array.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Errors     []string    `json:"errors,omitempty"`
}

// JSON writes a success envelope.
func JSON(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	write(w, statusCode, Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// Error maps a domain error to its HTTP-equivalent status and writes a
// failure envelope. Unrecognized errors become a generic 500; the underlying
// cause is logged, never surfaced.
func Error(w http.ResponseWriter, err error) {
	statusCode, message := statusFor(err)

	if statusCode == http.StatusInternalServerError {
		slog.Error("request failed", slog.String("error", err.Error()))
	}

	write(w, statusCode, Response{
		StatusCode: statusCode,
		Data:       nil,
		Message:    message,
		Success:    false,
		Errors:     []string{message},
	})
}

// Fail writes a failure envelope with an explicit status and message. Used
// by the few call sites that reject a request before any domain logic runs.
func Fail(w http.ResponseWriter, statusCode int, message string) {
	write(w, statusCode, Response{
		StatusCode: statusCode,
		Data:       nil,
		Message:    message,
		Success:    false,
		Errors:     []string{message},
	})
}

func statusFor(err error) (int, string) {
	var validationErr *users.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenReused),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, users.ErrUserNotFound),
		errors.Is(err, channels.ErrChannelNotFound),
		errors.Is(err, channels.ErrSubscriptionNotFound),
		errors.Is(err, videos.ErrVideoNotFound),
		errors.Is(err, comments.ErrCommentNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, users.ErrHandleTaken),
		errors.Is(err, users.ErrEmailTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, comments.ErrNotCommentOwner):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, channels.ErrSelfSubscription),
		errors.Is(err, comments.ErrEmptyContent),
		errors.Is(err, comments.ErrContentTooLong),
		errors.Is(err, likes.ErrInvalidTarget):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func write(w http.ResponseWriter, statusCode int, body Response) {
	responseBytes, err := json.Marshal(body)
	if err != nil {
		slog.Error("failed to marshal response", slog.String("error", err.Error()))
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, writeErr := w.Write(responseBytes); writeErr != nil {
		slog.Warn("failed to write response", slog.String("error", writeErr.Error()))
	}
}
