package post_http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"inkwell-post-service/internal/auth"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.PostDetailed, error)
}

type CreatePostHandler struct {
	creator  PostCreator
	validate *validator.Validate
	log      *logger.Logger
}

func NewCreatePostHandler(creator PostCreator, validate *validator.Validate, log *logger.Logger) *CreatePostHandler {
	return &CreatePostHandler{creator: creator, validate: validate, log: log}
}

type CreatePostRequest struct {
	Title       string `json:"title" validate:"required,min=4,max=120"`
	Description string `json:"description" validate:"required,min=20,max=255"`
}

func (h *CreatePostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	principalID, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Create post validation failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dto := &model.CreatePostDTO{
		AuthorID:    principalID,
		Title:       req.Title,
		Description: req.Description,
	}

	created, err := h.creator.CreatePost(r.Context(), dto)
	if err != nil {
		h.log.Error("Failed to create post", slog.String("error", err.Error()), slog.Int64("author_id", principalID))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Post created successfully",
		"data":    created,
	})
}
