package post_http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"inkwell-post-service/internal/auth"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

type PostUpdater interface {
	UpdatePost(ctx context.Context, principalID, id int64, dto *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	updater  PostUpdater
	validate *validator.Validate
	log      *logger.Logger
}

func NewUpdatePostHandler(updater PostUpdater, validate *validator.Validate, log *logger.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{updater: updater, validate: validate, log: log}
}

type UpdatePostRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=4,max=120"`
	Description *string `json:"description" validate:"omitempty,min=20,max=255"`
}

func (h *UpdatePostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	principalID, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "post id must be a positive integer")
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Update post validation failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dto := &model.UpdatePostDTO{
		Title:       req.Title,
		Description: req.Description,
	}

	updated, err := h.updater.UpdatePost(r.Context(), principalID, id, dto)
	if err != nil {
		h.log.Debug("Failed to update post", slog.String("error", err.Error()), slog.Int64("post_id", id))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Post updated successfully",
		"data":    updated,
	})
}
