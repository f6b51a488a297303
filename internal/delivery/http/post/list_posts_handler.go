package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

var errInvalidAuthorID = errors.New("authorId must be an integer")

type PostLister interface {
	ListPosts(ctx context.Context, query *model.ListPostsQuery) ([]*model.PostDetailed, int, error)
}

type ListPostsHandler struct {
	lister PostLister
	log    *logger.Logger
}

func NewListPostsHandler(lister PostLister, log *logger.Logger) *ListPostsHandler {
	return &ListPostsHandler{lister: lister, log: log}
}

func (h *ListPostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, total, err := h.lister.ListPosts(r.Context(), query)
	if err != nil {
		h.log.Debug("Failed to list posts", slog.String("error", err.Error()))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Posts retrieved successfully",
		"data":    posts,
		"total":   total,
	})
}

func parseListQuery(r *http.Request) (*model.ListPostsQuery, error) {
	q := r.URL.Query()
	query := &model.ListPostsQuery{}

	if v := q.Get("title"); v != "" {
		query.Title = &v
	}
	if v := q.Get("description"); v != "" {
		query.Description = &v
	}
	if v := q.Get("createdSort"); v != "" {
		query.CreatedSort = &v
	}
	if v := q.Get("updatedSort"); v != "" {
		query.UpdatedSort = &v
	}
	if v := q.Get("authorName"); v != "" {
		query.AuthorName = &v
	}
	if v := q.Get("authorId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errInvalidAuthorID
		}
		query.AuthorID = &id
	}
	if v := q.Get("pageSize"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			query.PageSize = &size
		}
	}
	if v := q.Get("pageNumber"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			query.PageNumber = &page
		}
	}

	return query, nil
}
