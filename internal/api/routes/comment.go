package routes

import (
	"github.com/go-chi/chi/v5"

	"echostream/internal/api/handlers/comment"
	"echostream/internal/api/middleware"
	"echostream/internal/core/comments"
)

// CommentRoutes returns the video comment routes, behind the session gate.
// Comment-addressed operations live under /c to keep the wildcard names
// unambiguous.
func CommentRoutes(commentService comments.CommentService, gate *middleware.AuthMiddleware) chi.Router {
	h := comment.NewHandler(commentService)

	r := chi.NewRouter()
	r.Use(gate.RequireAuth)

	r.Get("/{videoID}", h.List)
	r.Post("/{videoID}", h.Create)

	r.Patch("/c/{commentID}", h.Update)
	r.Delete("/c/{commentID}", h.Delete)

	return r
}
