package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"echostream/internal/api/handlers/common"
	"echostream/internal/core/auth"
	"echostream/internal/core/users"
)

// AccessTokenCookie is the cookie the access token travels in; the
// Authorization header is the fallback.
const AccessTokenCookie = "accessToken"

type contextKey string

const currentUserKey contextKey = "current_user"

// AuthMiddleware is the session gate for protected routes: it extracts the
// bearer credential, validates it against the token issuer and resolves the
// identity against the user store. One store lookup, zero mutations.
type AuthMiddleware struct {
	tokens   *auth.TokenIssuer
	userRepo users.UserRepository
}

// NewAuthMiddleware creates a new session gate.
func NewAuthMiddleware(tokens *auth.TokenIssuer, userRepo users.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// RequireAuth rejects requests without a valid access token. A missing or
// invalid credential is 401; a valid credential whose identity no longer
// exists is 403. On success the sanitized profile is attached to the
// request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			common.Fail(w, http.StatusUnauthorized, "not authorized, you must be logged in first")
			return
		}

		claims, err := m.tokens.VerifyAccessToken(token)
		if err != nil {
			slog.Info("authentication failed",
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()),
			)
			common.Fail(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), claims.UserID())
		if err != nil {
			if err == users.ErrUserNotFound {
				// The token verifies but its identity is gone: distinct from
				// "no credential".
				common.Fail(w, http.StatusForbidden, "no account matches this credential")
				return
			}
			common.Error(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), currentUserKey, user.Profile())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken reads the access token from the cookie, falling back to the
// Authorization: Bearer header.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}

	return ""
}

// CurrentUser returns the authenticated identity attached by RequireAuth.
// Nil means the gate did not run, which on a protected route is a wiring
// error, not a runtime case.
func CurrentUser(r *http.Request) *users.Profile {
	profile, _ := r.Context().Value(currentUserKey).(*users.Profile)
	return profile
}

// SetTestUser injects an authenticated identity into the context. Tests only.
func SetTestUser(ctx context.Context, profile *users.Profile) context.Context {
	return context.WithValue(ctx, currentUserKey, profile)
}
