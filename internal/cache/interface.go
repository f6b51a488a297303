package cache

import (
	"context"

	"inkwell-post-service/internal/model"
)

// PostCache holds exactly one aggregate entry: the full unfiltered post
// listing. Filtered listings never touch it.
//
//go:generate mockery --name PostCache --dir . --output ../../mocks/cache --outpkg mocks --with-expecter --filename PostCache.go
type PostCache interface {
	GetAllPosts(ctx context.Context) ([]*model.PostDetailed, error)
	SetAllPosts(ctx context.Context, posts []*model.PostDetailed) error
	DeleteAllPosts(ctx context.Context) error
}
