package user

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"echostream/internal/api/handlers/common"
	"echostream/internal/api/middleware"
	"echostream/internal/core/media"
	"echostream/internal/core/users"
	"echostream/internal/core/videos"
)

const maxUploadMemory = 32 << 20

// Handler serves the profile endpoints. All of them sit behind the session
// gate.
type Handler struct {
	userService  users.UserService
	videoService videos.VideoService
	stagingDir   string
}

// NewHandler creates a new user handler.
func NewHandler(userService users.UserService, videoService videos.VideoService, stagingDir string) *Handler {
	return &Handler{
		userService:  userService,
		videoService: videoService,
		stagingDir:   stagingDir,
	}
}

// CurrentUser handles GET /current-user: echoes the identity the gate
// resolved.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)
	if user == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	common.JSON(w, http.StatusOK, user, "current user fetched successfully")
}

// UpdateDetails handles PATCH /update-account.
func (h *Handler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)
	if user == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var input users.UpdateDetailsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.userService.UpdateDetails(r.Context(), user.ID, input)
	if err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusOK, updated.Profile(), "account details updated successfully")
}

// UpdateAvatar handles PATCH /avatar: a multipart form with a single avatar
// file.
func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.updateMedia(w, r, "avatar")
}

// UpdateCoverImage handles PATCH /cover-image.
func (h *Handler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.updateMedia(w, r, "coverImage")
}

func (h *Handler) updateMedia(w http.ResponseWriter, r *http.Request, field string) {
	user := middleware.CurrentUser(r)
	if user == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		common.Fail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	localPath := ""
	if r.MultipartForm != nil {
		if fhs := r.MultipartForm.File[field]; len(fhs) > 0 {
			path, err := media.StageFile(fhs[0], h.stagingDir)
			if err != nil {
				slog.Warn("failed to stage upload",
					slog.String("field", field),
					slog.String("error", err.Error()),
				)
				common.Fail(w, http.StatusInternalServerError, "failed to store uploaded file")
				return
			}
			localPath = path
		}
	}

	var updated *users.User
	var err error
	if field == "avatar" {
		updated, err = h.userService.UpdateAvatar(r.Context(), user.ID, localPath)
	} else {
		updated, err = h.userService.UpdateCoverImage(r.Context(), user.ID, localPath)
	}
	if err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusOK, updated.Profile(), field+" updated successfully")
}

// WatchHistory handles GET /watch-history: the viewer's ordered history,
// each entry expanded with its owner summary.
func (h *Handler) WatchHistory(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)
	if user == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	history, err := h.videoService.GetWatchHistory(r.Context(), user.ID)
	if err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusOK, history, "watch history fetched successfully")
}

type recordViewRequest struct {
	VideoID string `json:"videoId"`
}

// RecordView handles POST /watch-history: appends a video to the viewer's
// history.
func (h *Handler) RecordView(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)
	if user == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var body recordViewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.videoService.RecordView(r.Context(), user.ID, body.VideoID); err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusOK, nil, "video added to watch history")
}
