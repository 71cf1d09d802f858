package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"socialconnect/cmd/app"
	"socialconnect/internal/config"
	handlers "socialconnect/internal/handler"
	"socialconnect/internal/middleware"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		logger.Fatal("JWT_SECRET_KEY is not set")
	}

	db, _, services := app.App(cfg, logger)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// Public auth endpoints.
	auth := router.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", handler.RefreshToken).Methods(http.MethodPost)

	// Reads where the viewer is optional: a valid token annotates the
	// response, a missing one does not fail the request.
	public := router.PathPrefix("/api").Subrouter()
	public.Use(mux.MiddlewareFunc(middleware.OptionalAuth(cfg)))
	public.HandleFunc("/posts", handler.GetAllPosts).Methods(http.MethodGet)
	public.HandleFunc("/posts/{id:[0-9]+}", handler.GetPost).Methods(http.MethodGet)
	public.HandleFunc("/posts/user/{userId:[0-9]+}", handler.GetUserPosts).Methods(http.MethodGet)
	public.HandleFunc("/users/{id:[0-9]+}", handler.GetUser).Methods(http.MethodGet)
	public.HandleFunc("/users/{id:[0-9]+}/picture", handler.GetProfilePictureURL).Methods(http.MethodGet)
	public.HandleFunc("/comments/{id:[0-9]+}", handler.GetComment).Methods(http.MethodGet)
	public.HandleFunc("/comments/post/{postId:[0-9]+}", handler.GetPostComments).Methods(http.MethodGet)
	public.HandleFunc("/likes/post/{postId:[0-9]+}/count", handler.GetLikeCount).Methods(http.MethodGet)
	public.HandleFunc("/follows/{userId:[0-9]+}/followers", handler.GetFollowers).Methods(http.MethodGet)
	public.HandleFunc("/follows/{userId:[0-9]+}/following", handler.GetFollowing).Methods(http.MethodGet)
	public.HandleFunc("/follows/{userId:[0-9]+}/followers/count", handler.GetFollowerCount).Methods(http.MethodGet)
	public.HandleFunc("/follows/{userId:[0-9]+}/following/count", handler.GetFollowingCount).Methods(http.MethodGet)

	// Everything below requires an authenticated identity.
	private := router.PathPrefix("/api").Subrouter()
	private.Use(mux.MiddlewareFunc(middleware.Auth(cfg)))
	private.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	private.HandleFunc("/users/me", handler.GetCurrentUser).Methods(http.MethodGet)
	private.HandleFunc("/users/profile", handler.UpdateProfile).Methods(http.MethodPut)
	private.HandleFunc("/users/profile/picture", handler.UploadProfilePicture).Methods(http.MethodPost)
	private.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	private.HandleFunc("/posts/feed", handler.GetFeed).Methods(http.MethodGet)
	private.HandleFunc("/posts/{id:[0-9]+}", handler.UpdatePost).Methods(http.MethodPut)
	private.HandleFunc("/posts/{id:[0-9]+}", handler.DeletePost).Methods(http.MethodDelete)
	private.HandleFunc("/comments/post/{postId:[0-9]+}", handler.CreateComment).Methods(http.MethodPost)
	private.HandleFunc("/comments/{id:[0-9]+}", handler.UpdateComment).Methods(http.MethodPut)
	private.HandleFunc("/comments/{id:[0-9]+}", handler.DeleteComment).Methods(http.MethodDelete)
	private.HandleFunc("/likes/post/{postId:[0-9]+}", handler.LikePost).Methods(http.MethodPost)
	private.HandleFunc("/likes/post/{postId:[0-9]+}", handler.UnlikePost).Methods(http.MethodDelete)
	private.HandleFunc("/likes/post/{postId:[0-9]+}/is-liked", handler.IsLiked).Methods(http.MethodGet)
	private.HandleFunc("/follows/{userId:[0-9]+}", handler.FollowUser).Methods(http.MethodPost)
	private.HandleFunc("/follows/{userId:[0-9]+}", handler.UnfollowUser).Methods(http.MethodDelete)
	private.HandleFunc("/follows/{userId:[0-9]+}/is-following", handler.IsFollowing).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.CORS,
		middleware.Logging(logger),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info("starting server", zap.String("addr", addr))

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
