package post_service

import (
	"context"

	"inkwell-post-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/postservice --outpkg mocks --with-expecter --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
	ListPosts(ctx context.Context, query *model.ListPostsQuery) ([]*model.PostDetailed, int, error)
	GetAllPosts(ctx context.Context) ([]*model.PostDetailed, error)
	UpdatePost(ctx context.Context, principalID int64, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, principalID int64, id int64) error
}
