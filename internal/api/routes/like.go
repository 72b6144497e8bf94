package routes

import (
	"github.com/go-chi/chi/v5"

	"echostream/internal/api/handlers/like"
	"echostream/internal/api/middleware"
	"echostream/internal/core/likes"
)

// LikeRoutes returns the like toggle routes, behind the session gate.
func LikeRoutes(likeService likes.LikeService, gate *middleware.AuthMiddleware) chi.Router {
	h := like.NewHandler(likeService)

	r := chi.NewRouter()
	r.Use(gate.RequireAuth)

	r.Post("/toggle/v/{videoID}", h.ToggleVideo)
	r.Post("/toggle/c/{commentID}", h.ToggleComment)

	return r
}
