package like

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"echostream/internal/api/handlers/common"
	"echostream/internal/api/middleware"
	"echostream/internal/core/likes"
)

// Handler serves the like toggle endpoints.
type Handler struct {
	likeService likes.LikeService
}

// NewHandler creates a new like handler.
func NewHandler(likeService likes.LikeService) *Handler {
	return &Handler{likeService: likeService}
}

// ToggleVideo handles POST /toggle/v/{videoID}.
func (h *Handler) ToggleVideo(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, likes.TargetVideo, chi.URLParam(r, "videoID"))
}

// ToggleComment handles POST /toggle/c/{commentID}.
func (h *Handler) ToggleComment(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, likes.TargetComment, chi.URLParam(r, "commentID"))
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request, kind likes.TargetKind, targetID string) {
	viewer := middleware.CurrentUser(r)
	if viewer == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	result, err := h.likeService.Toggle(r.Context(), viewer.ID, kind, targetID)
	if err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusOK, result, "like toggled successfully")
}
