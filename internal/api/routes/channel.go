package routes

import (
	"github.com/go-chi/chi/v5"

	"echostream/internal/api/handlers/channel"
	"echostream/internal/api/middleware"
	"echostream/internal/core/channels"
)

// ChannelRoutes returns the channel profile route, behind the session gate.
func ChannelRoutes(channelService channels.ChannelService, gate *middleware.AuthMiddleware) chi.Router {
	h := channel.NewHandler(channelService)

	r := chi.NewRouter()
	r.Use(gate.RequireAuth)

	r.Get("/{handle}", h.GetProfile)

	return r
}

// SubscriptionRoutes returns the subscription edge routes, behind the
// session gate.
func SubscriptionRoutes(channelService channels.ChannelService, gate *middleware.AuthMiddleware) chi.Router {
	h := channel.NewHandler(channelService)

	r := chi.NewRouter()
	r.Use(gate.RequireAuth)

	r.Post("/{channelID}", h.Subscribe)
	r.Delete("/{channelID}", h.Unsubscribe)

	return r
}
