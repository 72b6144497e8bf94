package routes

import (
	"github.com/go-chi/chi/v5"

	"echostream/internal/api/handlers/authn"
	"echostream/internal/api/handlers/user"
	"echostream/internal/api/middleware"
	"echostream/internal/core/auth"
	"echostream/internal/core/users"
	"echostream/internal/core/videos"
)

// UserRoutes returns the account and session routes. Everything below the
// gate group requires an authenticated identity in context.
func UserRoutes(
	authService auth.Service,
	userService users.UserService,
	videoService videos.VideoService,
	gate *middleware.AuthMiddleware,
	stagingDir string,
) chi.Router {
	authHandler := authn.NewHandler(authService, stagingDir)
	userHandler := user.NewHandler(userService, videoService, stagingDir)

	r := chi.NewRouter()

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/refresh-token", authHandler.Refresh)

	r.Group(func(r chi.Router) {
		r.Use(gate.RequireAuth)

		r.Post("/logout", authHandler.Logout)
		r.Post("/change-password", authHandler.ChangePassword)

		r.Get("/current-user", userHandler.CurrentUser)
		r.Patch("/update-account", userHandler.UpdateDetails)
		r.Patch("/avatar", userHandler.UpdateAvatar)
		r.Patch("/cover-image", userHandler.UpdateCoverImage)

		r.Get("/watch-history", userHandler.WatchHistory)
		r.Post("/watch-history", userHandler.RecordView)
	})

	return r
}
