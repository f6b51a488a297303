package post_http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inkwell-post-service/internal/auth"
	"inkwell-post-service/internal/config"
	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/middleware"
	"inkwell-post-service/internal/model"
	post_service_mock "inkwell-post-service/mocks/postservice"
)

const validDescription = "A description comfortably over the minimum length"

func newTestRouter(t *testing.T, service *post_service_mock.Service) (*http.ServeMux, string) {
	t.Helper()

	log := logger.New("test")
	tokens := auth.NewTokenManager(config.JWT{Secret: "test-secret", TokenTTL: time.Hour})
	token, err := tokens.Issue(&model.Author{ID: 5, Username: "gopher"})
	require.NoError(t, err)

	mux := http.NewServeMux()
	api := NewPostHTTPService(service, log)
	api.RegisterRoutes(mux, middleware.NewAuth(tokens, log))

	return mux, token
}

func TestCreatePostHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		service := &post_service_mock.Service{}
		service.On("CreatePost", mock.Anything, mock.MatchedBy(func(dto *model.CreatePostDTO) bool {
			return dto.AuthorID == 5 && dto.Title == "A valid title"
		})).Return(&model.PostDetailed{
			Post:   &model.Post{ID: 1, AuthorID: 5, Title: "A valid title"},
			Author: &model.Author{ID: 5, Username: "gopher"},
		}, nil)

		mux, token := newTestRouter(t, service)

		body := `{"title":"A valid title","description":"` + validDescription + `"}`
		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "A valid title")
	})

	t.Run("Missing token", func(t *testing.T) {
		service := &post_service_mock.Service{}
		mux, _ := newTestRouter(t, service)

		body := `{"title":"A valid title","description":"` + validDescription + `"}`
		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		service.AssertNotCalled(t, "CreatePost")
	})

	t.Run("Title too short", func(t *testing.T) {
		service := &post_service_mock.Service{}
		mux, token := newTestRouter(t, service)

		body := `{"title":"abc","description":"` + validDescription + `"}`
		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "CreatePost")
	})

	t.Run("Duplicate title", func(t *testing.T) {
		service := &post_service_mock.Service{}
		service.On("CreatePost", mock.Anything, mock.AnythingOfType("*model.CreatePostDTO")).
			Return(nil, custom_errors.ErrTitleAlreadyExists)

		mux, token := newTestRouter(t, service)

		body := `{"title":"A taken title","description":"` + validDescription + `"}`
		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGetPostHandler(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		service := &post_service_mock.Service{}
		service.On("GetPostByID", mock.Anything, int64(1)).Return(&model.PostDetailed{
			Post:   &model.Post{ID: 1, AuthorID: 5, Title: "A valid title"},
			Author: &model.Author{ID: 5, Username: "gopher"},
		}, nil)

		mux, _ := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/posts/1", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "gopher")
	})

	t.Run("Absent", func(t *testing.T) {
		service := &post_service_mock.Service{}
		service.On("GetPostByID", mock.Anything, int64(42)).Return(nil, custom_errors.ErrPostNotFound)

		mux, _ := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/posts/42", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Non-numeric id", func(t *testing.T) {
		service := &post_service_mock.Service{}
		mux, _ := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/posts/abc", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "GetPostByID")
	})
}

func TestListPostsHandler(t *testing.T) {
	t.Run("Query parameters reach the service", func(t *testing.T) {
		service := &post_service_mock.Service{}
		service.On("ListPosts", mock.Anything, mock.MatchedBy(func(q *model.ListPostsQuery) bool {
			return q.Title != nil && *q.Title == "go" &&
				q.CreatedSort != nil && *q.CreatedSort == "desc" &&
				q.AuthorID != nil && *q.AuthorID == 7 &&
				q.PageSize != nil && *q.PageSize == 20 &&
				q.PageNumber != nil && *q.PageNumber == 2
		})).Return([]*model.PostDetailed{
			{Post: &model.Post{ID: 1, AuthorID: 7, Title: "go"}, Author: &model.Author{ID: 7}},
		}, 21, nil)

		mux, _ := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/posts?title=go&createdSort=desc&authorId=7&pageSize=20&pageNumber=2", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":21`)
	})

	t.Run("Empty result is NotFound", func(t *testing.T) {
		service := &post_service_mock.Service{}
		service.On("ListPosts", mock.Anything, mock.AnythingOfType("*model.ListPostsQuery")).
			Return(nil, 0, custom_errors.ErrNoPostsFound)

		mux, _ := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Non-numeric author id", func(t *testing.T) {
		service := &post_service_mock.Service{}
		mux, _ := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/posts?authorId=abc", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "ListPosts")
	})
}

func TestGetAllPostsHandler(t *testing.T) {
	service := &post_service_mock.Service{}
	service.On("GetAllPosts", mock.Anything).Return([]*model.PostDetailed{
		{Post: &model.Post{ID: 1, AuthorID: 5, Title: "t"}, Author: &model.Author{ID: 5, Username: "gopher"}},
	}, nil)

	mux, _ := newTestRouter(t, service)

	req := httptest.NewRequest(http.MethodGet, "/posts/all", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertCalled(t, "GetAllPosts", mock.Anything)
}

func TestUpdatePostHandler(t *testing.T) {
	t.Run("Updated", func(t *testing.T) {
		service := &post_service_mock.Service{}
		service.On("UpdatePost", mock.Anything, int64(5), int64(1), mock.AnythingOfType("*model.UpdatePostDTO")).
			Return(&model.Post{ID: 1, AuthorID: 5, Title: "A new title"}, nil)

		mux, token := newTestRouter(t, service)

		body := `{"title":"A new title"}`
		req := httptest.NewRequest(http.MethodPatch, "/posts/1", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Forbidden", func(t *testing.T) {
		service := &post_service_mock.Service{}
		service.On("UpdatePost", mock.Anything, int64(5), int64(1), mock.AnythingOfType("*model.UpdatePostDTO")).
			Return(nil, custom_errors.ErrForbidden)

		mux, token := newTestRouter(t, service)

		body := `{"title":"A new title"}`
		req := httptest.NewRequest(http.MethodPatch, "/posts/1", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Missing token", func(t *testing.T) {
		service := &post_service_mock.Service{}
		mux, _ := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodPatch, "/posts/1", strings.NewReader(`{"title":"A new title"}`))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		service.AssertNotCalled(t, "UpdatePost")
	})
}

func TestDeletePostHandler(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		service := &post_service_mock.Service{}
		service.On("DeletePost", mock.Anything, int64(5), int64(1)).Return(nil)

		mux, token := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodDelete, "/posts/1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Absent post", func(t *testing.T) {
		service := &post_service_mock.Service{}
		service.On("DeletePost", mock.Anything, int64(5), int64(42)).Return(custom_errors.ErrPostNotFound)

		mux, token := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodDelete, "/posts/42", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		service := &post_service_mock.Service{}
		mux, _ := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodDelete, "/posts/1", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		service.AssertNotCalled(t, "DeletePost")
	})
}

func TestMutationHandlersUseTokenAuthor(t *testing.T) {
	log := logger.New("test")
	tokens := auth.NewTokenManager(config.JWT{Secret: "test-secret", TokenTTL: time.Hour})
	token, err := tokens.Issue(&model.Author{ID: 9, Username: "ferret"})
	require.NoError(t, err)

	service := &post_service_mock.Service{}
	service.On("CreatePost", mock.Anything, mock.MatchedBy(func(dto *model.CreatePostDTO) bool {
		return dto.AuthorID == 9
	})).Return(&model.PostDetailed{
		Post:   &model.Post{ID: 1, AuthorID: 9, Title: "A valid title"},
		Author: &model.Author{ID: 9, Username: "ferret"},
	}, nil)
	service.On("UpdatePost", mock.Anything, int64(9), int64(1), mock.AnythingOfType("*model.UpdatePostDTO")).
		Return(&model.Post{ID: 1, AuthorID: 9, Title: "A new title"}, nil)
	service.On("DeletePost", mock.Anything, int64(9), int64(1)).Return(nil)

	mux := http.NewServeMux()
	api := NewPostHTTPService(service, log)
	api.RegisterRoutes(mux, middleware.NewAuth(tokens, log))

	requests := []*http.Request{
		httptest.NewRequest(http.MethodPost, "/posts",
			strings.NewReader(`{"title":"A valid title","description":"`+validDescription+`"}`)),
		httptest.NewRequest(http.MethodPatch, "/posts/1",
			strings.NewReader(`{"title":"A new title"}`)),
		httptest.NewRequest(http.MethodDelete, "/posts/1", nil),
	}
	for _, req := range requests {
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Less(t, rec.Code, 300, "%s %s", req.Method, req.URL.Path)
	}

	service.AssertExpectations(t)
}
