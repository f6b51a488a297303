package post_http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
}

type GetPostHandler struct {
	getter PostGetter
	log    *logger.Logger
}

func NewGetPostHandler(getter PostGetter, log *logger.Logger) *GetPostHandler {
	return &GetPostHandler{getter: getter, log: log}
}

func (h *GetPostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "post id must be a positive integer")
		return
	}

	post, err := h.getter.GetPostByID(r.Context(), id)
	if err != nil {
		h.log.Debug("Failed to get post", slog.String("error", err.Error()), slog.Int64("post_id", id))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data": post,
	})
}
