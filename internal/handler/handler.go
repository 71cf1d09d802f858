package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"socialconnect/internal/config"
	"socialconnect/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	UserService    service.UserService
	PostService    service.PostService
	CommentService service.CommentService
	FollowService  service.FollowService
	LikeService    service.LikeService
	FeedService    service.FeedService
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		UserService:    service.User,
		PostService:    service.Post,
		CommentService: service.Comment,
		FollowService:  service.Follow,
		LikeService:    service.Like,
		FeedService:    service.Feed,
		Cfg:            config,
		Validate:       validator.New(),
	}
}

// pathID extracts a numeric path variable set by the router.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
