package auth_http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"inkwell-post-service/internal/logger"
	auth_service "inkwell-post-service/internal/service/auth"
)

var validate = validator.New()

type AuthHTTPService struct {
	authService   auth_service.Service
	log           *logger.Logger
	signupHandler *SignupHandler
	loginHandler  *LoginHandler
}

func NewAuthHTTPService(authService auth_service.Service, log *logger.Logger) *AuthHTTPService {
	return &AuthHTTPService{
		authService:   authService,
		log:           log,
		signupHandler: NewSignupHandler(authService, validate, log),
		loginHandler:  NewLoginHandler(authService, validate, log),
	}
}

func (s *AuthHTTPService) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/signup", s.signupHandler.Signup)
	mux.HandleFunc("POST /auth/login", s.loginHandler.Login)
}
