package auth_http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

type SignupProvider interface {
	Signup(ctx context.Context, dto *model.SignupDTO) (string, error)
}

type SignupHandler struct {
	provider SignupProvider
	validate *validator.Validate
	log      *logger.Logger
}

func NewSignupHandler(provider SignupProvider, validate *validator.Validate, log *logger.Logger) *SignupHandler {
	return &SignupHandler{provider: provider, validate: validate, log: log}
}

type SignupRequest struct {
	Username    string `json:"username" validate:"required,min=4,max=24"`
	DisplayName string `json:"display_name" validate:"required,max=64"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
}

func (h *SignupHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Signup validation failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dto := &model.SignupDTO{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	}

	token, err := h.provider.Signup(r.Context(), dto)
	if err != nil {
		h.log.Debug("Signup failed", slog.String("error", err.Error()), slog.String("username", req.Username))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "Author created successfully",
		"access_token": token,
	})
}
