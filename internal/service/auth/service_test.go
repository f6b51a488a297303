package auth_service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"inkwell-post-service/internal/auth"
	"inkwell-post-service/internal/config"
	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	prometheus_metrics "inkwell-post-service/internal/metrics/prometheus"
	"inkwell-post-service/internal/model"
	author_repository_mock "inkwell-post-service/mocks/author"
)

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager(config.JWT{Secret: "test-secret", TokenTTL: time.Hour})
}

func TestAuthService_Signup(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	t.Run("Success issues a valid token", func(t *testing.T) {
		authorRepo := &author_repository_mock.Repository{}
		authorRepo.On("GetByUsername", mock.Anything, "gopher").Return(nil, custom_errors.ErrAuthorNotFound)
		authorRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Author"), mock.AnythingOfType("string")).
			Return(&model.Author{ID: 1, Username: "gopher", DisplayName: "Gopher"}, nil)

		tokens := newTokenManager()
		service := NewAuthService(authorRepo, tokens, log, metrics)

		token, err := service.Signup(context.Background(), &model.SignupDTO{
			Username:    "gopher",
			DisplayName: "Gopher",
			Password:    "hunter2password",
		})
		require.NoError(t, err)

		claims, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.AuthorID)
		assert.Equal(t, "gopher", claims.Username)
	})

	t.Run("Stored secret is a bcrypt hash, not the password", func(t *testing.T) {
		authorRepo := &author_repository_mock.Repository{}
		var storedSecret string
		authorRepo.On("GetByUsername", mock.Anything, "gopher").Return(nil, custom_errors.ErrAuthorNotFound)
		authorRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Author"), mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				storedSecret = args.Get(2).(string)
			}).
			Return(&model.Author{ID: 1, Username: "gopher"}, nil)

		service := NewAuthService(authorRepo, newTokenManager(), log, metrics)

		_, err := service.Signup(context.Background(), &model.SignupDTO{
			Username:    "gopher",
			DisplayName: "Gopher",
			Password:    "hunter2password",
		})
		require.NoError(t, err)
		assert.NotEqual(t, "hunter2password", storedSecret)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedSecret), []byte("hunter2password")))
	})

	t.Run("Taken username conflicts", func(t *testing.T) {
		authorRepo := &author_repository_mock.Repository{}
		authorRepo.On("GetByUsername", mock.Anything, "gopher").
			Return(&model.Author{ID: 1, Username: "gopher"}, nil)

		service := NewAuthService(authorRepo, newTokenManager(), log, metrics)

		_, err := service.Signup(context.Background(), &model.SignupDTO{
			Username:    "gopher",
			DisplayName: "Gopher",
			Password:    "hunter2password",
		})
		assert.ErrorIs(t, err, custom_errors.ErrUsernameAlreadyExists)
		authorRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Concurrent signup loses the race on the unique index", func(t *testing.T) {
		authorRepo := &author_repository_mock.Repository{}
		authorRepo.On("GetByUsername", mock.Anything, "gopher").Return(nil, custom_errors.ErrAuthorNotFound)
		authorRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Author"), mock.AnythingOfType("string")).
			Return(nil, custom_errors.ErrUsernameAlreadyExists)

		service := NewAuthService(authorRepo, newTokenManager(), log, metrics)

		_, err := service.Signup(context.Background(), &model.SignupDTO{
			Username:    "gopher",
			DisplayName: "Gopher",
			Password:    "hunter2password",
		})
		assert.ErrorIs(t, err, custom_errors.ErrUsernameAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2password"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		authorRepo := &author_repository_mock.Repository{}
		authorRepo.On("GetCredentialsByUsername", mock.Anything, "gopher").
			Return(&model.AuthorCredentials{
				Author: model.Author{ID: 1, Username: "gopher"},
				Secret: string(hash),
			}, nil)

		tokens := newTokenManager()
		service := NewAuthService(authorRepo, tokens, log, metrics)

		token, err := service.Login(context.Background(), &model.LoginDTO{
			Username: "gopher",
			Password: "hunter2password",
		})
		require.NoError(t, err)

		claims, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.AuthorID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		authorRepo := &author_repository_mock.Repository{}
		authorRepo.On("GetCredentialsByUsername", mock.Anything, "gopher").
			Return(&model.AuthorCredentials{
				Author: model.Author{ID: 1, Username: "gopher"},
				Secret: string(hash),
			}, nil)

		service := NewAuthService(authorRepo, newTokenManager(), log, metrics)

		_, err := service.Login(context.Background(), &model.LoginDTO{
			Username: "gopher",
			Password: "not-the-password",
		})
		assert.ErrorIs(t, err, custom_errors.ErrInvalidCredentials)
	})

	t.Run("Unknown username reports the same invalid credentials", func(t *testing.T) {
		authorRepo := &author_repository_mock.Repository{}
		authorRepo.On("GetCredentialsByUsername", mock.Anything, "stranger").
			Return(nil, custom_errors.ErrAuthorNotFound)

		service := NewAuthService(authorRepo, newTokenManager(), log, metrics)

		_, err := service.Login(context.Background(), &model.LoginDTO{
			Username: "stranger",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, custom_errors.ErrInvalidCredentials)
	})
}
