package post_http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/middleware"
	post_service "inkwell-post-service/internal/service/post"
)

var validate = validator.New()

type PostHTTPService struct {
	postService        post_service.Service
	log                *logger.Logger
	createPostHandler  *CreatePostHandler
	listPostsHandler   *ListPostsHandler
	getAllPostsHandler *GetAllPostsHandler
	getPostHandler     *GetPostHandler
	updatePostHandler  *UpdatePostHandler
	deletePostHandler  *DeletePostHandler
}

func NewPostHTTPService(postService post_service.Service, log *logger.Logger) *PostHTTPService {
	return &PostHTTPService{
		postService:        postService,
		log:                log,
		createPostHandler:  NewCreatePostHandler(postService, validate, log),
		listPostsHandler:   NewListPostsHandler(postService, log),
		getAllPostsHandler: NewGetAllPostsHandler(postService, log),
		getPostHandler:     NewGetPostHandler(postService, log),
		updatePostHandler:  NewUpdatePostHandler(postService, validate, log),
		deletePostHandler:  NewDeletePostHandler(postService, log),
	}
}

func (s *PostHTTPService) RegisterRoutes(mux *http.ServeMux, auth *middleware.Auth) {
	mux.Handle("POST /posts", auth.Require(http.HandlerFunc(s.createPostHandler.CreatePost)))
	mux.HandleFunc("GET /posts", s.listPostsHandler.ListPosts)
	mux.HandleFunc("GET /posts/all", s.getAllPostsHandler.GetAllPosts)
	mux.HandleFunc("GET /posts/{id}", s.getPostHandler.GetPost)
	mux.Handle("PATCH /posts/{id}", auth.Require(http.HandlerFunc(s.updatePostHandler.UpdatePost)))
	mux.Handle("DELETE /posts/{id}", auth.Require(http.HandlerFunc(s.deletePostHandler.DeletePost)))
}
