package post_http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"inkwell-post-service/internal/auth"
	"inkwell-post-service/internal/logger"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, principalID, id int64) error
}

type DeletePostHandler struct {
	deleter PostDeleter
	log     *logger.Logger
}

func NewDeletePostHandler(deleter PostDeleter, log *logger.Logger) *DeletePostHandler {
	return &DeletePostHandler{deleter: deleter, log: log}
}

func (h *DeletePostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
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

	if err := h.deleter.DeletePost(r.Context(), principalID, id); err != nil {
		h.log.Debug("Failed to delete post", slog.String("error", err.Error()), slog.Int64("post_id", id))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Post deleted successfully",
	})
}
