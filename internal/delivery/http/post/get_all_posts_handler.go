package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

type AllPostsGetter interface {
	GetAllPosts(ctx context.Context) ([]*model.PostDetailed, error)
}

type GetAllPostsHandler struct {
	getter AllPostsGetter
	log    *logger.Logger
}

func NewGetAllPostsHandler(getter AllPostsGetter, log *logger.Logger) *GetAllPostsHandler {
	return &GetAllPostsHandler{getter: getter, log: log}
}

func (h *GetAllPostsHandler) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.getter.GetAllPosts(r.Context())
	if err != nil {
		h.log.Error("Failed to get all posts", slog.String("error", err.Error()))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data": posts,
	})
}
