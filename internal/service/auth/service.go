package auth_service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"inkwell-post-service/internal/auth"
	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/metrics"
	"inkwell-post-service/internal/model"
	author_repository "inkwell-post-service/internal/repository/author"
)

type AuthService struct {
	authorRepo author_repository.Repository
	tokens     *auth.TokenManager
	log        *logger.Logger
	metrics    metrics.MetricsProvider
}

func NewAuthService(
	authorRepo author_repository.Repository,
	tokens *auth.TokenManager,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *AuthService {
	return &AuthService{
		authorRepo: authorRepo,
		tokens:     tokens,
		log:        log,
		metrics:    metrics,
	}
}

func (s *AuthService) Signup(ctx context.Context, signup *model.SignupDTO) (string, error) {
	_, err := s.authorRepo.GetByUsername(ctx, signup.Username)
	if err == nil {
		s.log.Debug("Username already taken", slog.String("username", signup.Username))
		s.metrics.IncrementAuthOperations("signup", false)
		return "", custom_errors.ErrUsernameAlreadyExists
	}
	if !errors.Is(err, custom_errors.ErrAuthorNotFound) {
		s.log.Error("Failed to check username", slog.String("error", err.Error()))
		s.metrics.IncrementAuthOperations("signup", false)
		return "", custom_errors.ErrDatabaseQuery
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(signup.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		s.metrics.IncrementAuthOperations("signup", false)
		return "", err
	}

	author, err := s.authorRepo.Create(ctx, &model.Author{
		Username:    signup.Username,
		DisplayName: signup.DisplayName,
	}, string(hashed))
	if err != nil {
		s.metrics.IncrementAuthOperations("signup", false)
		if errors.Is(err, custom_errors.ErrUsernameAlreadyExists) {
			s.log.Debug("Username taken by concurrent signup", slog.String("username", signup.Username))
			return "", custom_errors.ErrUsernameAlreadyExists
		}
		s.log.Error("Failed to create author", slog.String("error", err.Error()))
		return "", custom_errors.ErrDatabaseQuery
	}

	token, err := s.tokens.Issue(author)
	if err != nil {
		s.log.Error("Failed to issue token", slog.String("error", err.Error()))
		s.metrics.IncrementAuthOperations("signup", false)
		return "", err
	}

	s.metrics.IncrementAuthOperations("signup", true)
	return token, nil
}

func (s *AuthService) Login(ctx context.Context, login *model.LoginDTO) (string, error) {
	creds, err := s.authorRepo.GetCredentialsByUsername(ctx, login.Username)
	if err != nil {
		s.metrics.IncrementAuthOperations("login", false)
		if errors.Is(err, custom_errors.ErrAuthorNotFound) {
			s.log.Debug("Unknown username on login", slog.String("username", login.Username))
			return "", custom_errors.ErrInvalidCredentials
		}
		s.log.Error("Failed to load credentials", slog.String("error", err.Error()))
		return "", custom_errors.ErrDatabaseQuery
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.Secret), []byte(login.Password)); err != nil {
		s.log.Debug("Password mismatch on login", slog.String("username", login.Username))
		s.metrics.IncrementAuthOperations("login", false)
		return "", custom_errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(&creds.Author)
	if err != nil {
		s.log.Error("Failed to issue token", slog.String("error", err.Error()))
		s.metrics.IncrementAuthOperations("login", false)
		return "", err
	}

	s.metrics.IncrementAuthOperations("login", true)
	return token, nil
}
