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

type LoginProvider interface {
	Login(ctx context.Context, dto *model.LoginDTO) (string, error)
}

type LoginHandler struct {
	provider LoginProvider
	validate *validator.Validate
	log      *logger.Logger
}

func NewLoginHandler(provider LoginProvider, validate *validator.Validate, log *logger.Logger) *LoginHandler {
	return &LoginHandler{provider: provider, validate: validate, log: log}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dto := &model.LoginDTO{
		Username: req.Username,
		Password: req.Password,
	}

	token, err := h.provider.Login(r.Context(), dto)
	if err != nil {
		h.log.Debug("Login failed", slog.String("error", err.Error()), slog.String("username", req.Username))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Login successful",
		"access_token": token,
	})
}
