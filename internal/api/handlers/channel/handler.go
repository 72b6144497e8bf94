package channel

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"echostream/internal/api/handlers/common"
	"echostream/internal/api/middleware"
	"echostream/internal/core/channels"
)

// Handler serves the channel profile and subscription endpoints.
type Handler struct {
	channelService channels.ChannelService
}

// NewHandler creates a new channel handler.
func NewHandler(channelService channels.ChannelService) *Handler {
	return &Handler{channelService: channelService}
}

// GetProfile handles GET /{handle}: the aggregated channel summary with the
// viewer-derived isSubscribed flag.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.CurrentUser(r)
	if viewer == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	handle := chi.URLParam(r, "handle")

	profile, err := h.channelService.GetProfile(r.Context(), handle, viewer.ID)
	if err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusOK, profile, "channel profile fetched successfully")
}

// Subscribe handles POST /subscriptions/{channelID}.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.CurrentUser(r)
	if viewer == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	channelID := chi.URLParam(r, "channelID")

	sub, err := h.channelService.Subscribe(r.Context(), viewer.ID, channelID)
	if err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusCreated, sub, "subscribed successfully")
}

// Unsubscribe handles DELETE /subscriptions/{channelID}.
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.CurrentUser(r)
	if viewer == nil {
		common.Fail(w, http.StatusUnauthorized, "not authorized")
		return
	}

	channelID := chi.URLParam(r, "channelID")

	if err := h.channelService.Unsubscribe(r.Context(), viewer.ID, channelID); err != nil {
		common.Error(w, err)
		return
	}

	common.JSON(w, http.StatusOK, nil, "unsubscribed successfully")
}
