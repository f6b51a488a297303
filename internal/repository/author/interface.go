package author_repository

import (
	"context"

	"inkwell-post-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/author --outpkg mocks --with-expecter --filename AuthorRepository.go
type Repository interface {
	Create(ctx context.Context, author *model.Author, secret string) (*model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	GetByUsername(ctx context.Context, username string) (*model.Author, error)
	GetCredentialsByUsername(ctx context.Context, username string) (*model.AuthorCredentials, error)
	GetByUsernameFragment(ctx context.Context, fragment string) (*model.Author, error)
}
