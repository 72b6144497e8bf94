package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"echostream/internal/api/handlers/common"
	"echostream/internal/api/middleware"
	"echostream/internal/core/comments"
)

// Handler serves the video comment endpoints.
type Handler struct {
	commentService comments.CommentService
}

// NewHandler creates a new comment handler.
func NewHandler(commentService comments.CommentService) *Handler {
	return &Handler{commentService: commentService}
}

type commentBody struct {
	Content string `json:"content"`
}

// List handles GET /{videoID} with optional page and limit query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.CurrentUser(r)
	if viewer == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	videoID := chi.URLParam(r, "videoID")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.commentService.GetVideoComments(r.Context(), videoID, page, limit)
	if err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusOK, result, "comments fetched successfully")
}

// Create handles POST /{videoID}.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.CurrentUser(r)
	if viewer == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var body commentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	videoID := chi.URLParam(r, "videoID")

	created, err := h.commentService.AddComment(r.Context(), videoID, viewer.ID, body.Content)
	if err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusCreated, created, "comment added successfully")
}

// Update handles PATCH /c/{commentID}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.CurrentUser(r)
	if viewer == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var body commentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	commentID := chi.URLParam(r, "commentID")

	updated, err := h.commentService.UpdateComment(r.Context(), commentID, viewer.ID, body.Content)
	if err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusOK, updated, "comment updated successfully")
}

// Delete handles DELETE /c/{commentID}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.CurrentUser(r)
	if viewer == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	commentID := chi.URLParam(r, "commentID")

	if err := h.commentService.DeleteComment(r.Context(), commentID, viewer.ID); err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusOK, nil, "comment deleted successfully")
}
