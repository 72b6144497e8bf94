package authn

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"echostream/internal/api/handlers/common"
	"echostream/internal/api/middleware"
	"echostream/internal/core/auth"
	"echostream/internal/core/media"
)

// maxUploadMemory bounds the in-memory part of multipart parsing; larger
// parts spill to disk.
const maxUploadMemory = 32 << 20

// RefreshTokenCookie is the cookie the refresh token travels in.
const RefreshTokenCookie = "refreshToken"

// Handler serves the session lifecycle endpoints.
type Handler struct {
	authService auth.Service
	stagingDir  string
}

// NewHandler creates a new auth handler. stagingDir receives uploaded files
// before they move to the media store.
func NewHandler(authService auth.Service, stagingDir string) *Handler {
	return &Handler{
		authService: authService,
		stagingDir:  stagingDir,
	}
}

// Register handles POST /register: multipart form with the four account
// fields plus avatar and coverImage files.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		common.Fail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := auth.RegisterRequest{
		Handle:      r.FormValue("userName"),
		Email:       r.FormValue("email"),
		DisplayName: r.FormValue("fullName"),
		Password:    r.FormValue("password"),
	}

	avatarPath, coverPath := h.stageUploads(r)
	req.AvatarPath = avatarPath
	req.CoverImagePath = coverPath

	// Whatever the outcome, no staged file survives the request. The media
	// store path removes them itself; this covers failures before upload.
	defer removeStaged(avatarPath, coverPath)

	profile, err := h.authService.Register(r.Context(), req)
	if err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusCreated, profile, "user registered successfully")
}

type loginRequest struct {
	Handle   string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login: handle-or-email plus password, returning the
// profile and both tokens, which are also set as cookies.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), auth.LoginRequest{
		Handle:   body.Handle,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		common.Error(w, err)
		return
	}

	setTokenCookies(w, result.Tokens)

	common.JSON(w, http.StatusOK, map[string]interface{}{
		"user":         result.User,
		"accessToken":  result.Tokens.AccessToken,
		"refreshToken": result.Tokens.RefreshToken,
	}, "user logged in successfully")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh handles POST /refresh-token: the refresh token comes from the
// cookie or the body, and a fresh rotated pair goes back out both ways.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(RefreshTokenCookie); err == nil {
		token = cookie.Value
	}
	if token == "" && r.Body != nil {
		var body refreshRequest
		// A missing or non-JSON body just means no token was supplied.
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			token = body.RefreshToken
		}
	}

	pair, err := h.authService.Refresh(r.Context(), token)
	if err != nil {
		common.Error(w, err)
		return
	}

	setTokenCookies(w, *pair)

	common.JSON(w, http.StatusOK, pair, "access token refreshed")
}

// Logout handles POST /logout on a protected route: clears the stored
// refresh token and both cookies.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)
	if user == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	if err := h.authService.Logout(r.Context(), user.ID); err != nil {
		common.Error(w, err)
		return
	}

	clearTokenCookies(w)

	common.JSON(w, http.StatusOK, nil, "user logged out successfully")
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ChangePassword handles POST /change-password on a protected route.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)
	if user == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var body changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.ChangePassword(r.Context(), user.ID, body.OldPassword, body.NewPassword); err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusOK, nil, "password changed successfully")
}

// stageUploads writes the avatar and coverImage parts into the staging dir.
// Missing parts yield empty paths; the service rejects those before any
// store write.
func (h *Handler) stageUploads(r *http.Request) (avatarPath, coverPath string) {
	if r.MultipartForm == nil {
		return "", ""
	}

	if fhs := r.MultipartForm.File["avatar"]; len(fhs) > 0 {
		path, err := media.StageFile(fhs[0], h.stagingDir)
		if err != nil {
			slog.Warn("failed to stage avatar upload", slog.String("error", err.Error()))
		} else {
			avatarPath = path
		}
	}
	if fhs := r.MultipartForm.File["coverImage"]; len(fhs) > 0 {
		path, err := media.StageFile(fhs[0], h.stagingDir)
		if err != nil {
			slog.Warn("failed to stage cover image upload", slog.String("error", err.Error()))
		} else {
			coverPath = path
		}
	}

	return avatarPath, coverPath
}

func removeStaged(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove staged upload", slog.String("path", p), slog.String("error", err.Error()))
		}
	}
}

func setTokenCookies(w http.ResponseWriter, pair auth.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
	})
}

func clearTokenCookies(w http.ResponseWriter) {
	for _, name := range []string{middleware.AccessTokenCookie, RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
			MaxAge:   -1,
		})
	}
}
