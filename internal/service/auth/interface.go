package auth_service

import (
	"context"

	"inkwell-post-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/authservice --outpkg mocks --with-expecter --filename AuthService.go
type Service interface {
	Signup(ctx context.Context, signup *model.SignupDTO) (string, error)
	Login(ctx context.Context, login *model.LoginDTO) (string, error)
}
