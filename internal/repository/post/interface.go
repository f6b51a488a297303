package post_repository

import (
	"context"

	"inkwell-post-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg mocks --with-expecter --filename PostRepository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	GetByTitle(ctx context.Context, title string) (*model.Post, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	List(ctx context.Context, spec model.FilterSpec) ([]*model.Post, int, error)
	ListAll(ctx context.Context) ([]*model.Post, error)
	Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
}
