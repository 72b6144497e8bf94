package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"echostream/internal/api/middleware"
	"echostream/internal/api/routes"
	"echostream/internal/config"
	"echostream/internal/core/auth"
	"echostream/internal/core/channels"
	"echostream/internal/core/comments"
	"echostream/internal/core/likes"
	"echostream/internal/core/media"
	"echostream/internal/core/users"
	"echostream/internal/core/videos"
	postgresRepo "echostream/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}
	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Connected to database, migrations up to date")

	// Token signing configuration is loaded once here and injected; nothing
	// reads the environment at request time.
	tokenIssuer, err := auth.NewTokenIssuer(auth.TokenConfig{
		AccessSecret:  []byte(cfg.Tokens.AccessSecret),
		RefreshSecret: []byte(cfg.Tokens.RefreshSecret),
		AccessTTL:     cfg.Tokens.AccessTTL,
		RefreshTTL:    cfg.Tokens.RefreshTTL,
	})
	if err != nil {
		log.Fatal("Failed to configure token issuer:", err)
	}

	mediaStore, err := media.NewS3Store(context.Background(), media.S3Config{
		Bucket:    cfg.Media.Bucket,
		Region:    cfg.Media.Region,
		AccessKey: cfg.Media.AccessKey,
		SecretKey: cfg.Media.SecretKey,
		Endpoint:  cfg.Media.Endpoint,
		BaseURL:   cfg.Media.BaseURL,
	})
	if err != nil {
		log.Fatal("Failed to configure media store:", err)
	}

	userRepo := postgresRepo.NewUserRepository(db)
	channelRepo := postgresRepo.NewChannelRepository(db)
	videoRepo := postgresRepo.NewVideoRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)
	likeRepo := postgresRepo.NewLikeRepository(db)

	hasher := auth.NewPasswordHasher()
	authService := auth.NewAuthService(userRepo, tokenIssuer, hasher, mediaStore)
	userService := users.NewUserService(userRepo, mediaStore)
	channelService := channels.NewChannelService(channelRepo)
	videoService := videos.NewVideoService(videoRepo, userRepo)
	commentService := comments.NewCommentService(commentRepo)
	likeService := likes.NewLikeService(likeRepo)

	gate := middleware.NewAuthMiddleware(tokenIssuer, userRepo)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	rateLimiter := middleware.NewRateLimiter(100, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/users", routes.UserRoutes(authService, userService, videoService, gate, cfg.TempUploadDir))
		r.Mount("/channels", routes.ChannelRoutes(channelService, gate))
		r.Mount("/subscriptions", routes.SubscriptionRoutes(channelService, gate))
		r.Mount("/comments", routes.CommentRoutes(commentService, gate))
		r.Mount("/likes", routes.LikeRoutes(likeService, gate))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	log.Printf("echostream API listening on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
