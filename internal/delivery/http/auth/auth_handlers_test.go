package auth_http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
	auth_service_mock "inkwell-post-service/mocks/authservice"
)

func newTestRouter(service *auth_service_mock.Service) *http.ServeMux {
	mux := http.NewServeMux()
	api := NewAuthHTTPService(service, logger.New("test"))
	api.RegisterRoutes(mux)
	return mux
}

func TestSignupHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		service := &auth_service_mock.Service{}
		service.On("Signup", mock.Anything, mock.MatchedBy(func(dto *model.SignupDTO) bool {
			return dto.Username == "gopher" && dto.Password == "hunter2password"
		})).Return("signed.jwt.token", nil)

		mux := newTestRouter(service)

		body := `{"username":"gopher","display_name":"Gopher","password":"hunter2password"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "signed.jwt.token")
	})

	t.Run("Taken username", func(t *testing.T) {
		service := &auth_service_mock.Service{}
		service.On("Signup", mock.Anything, mock.AnythingOfType("*model.SignupDTO")).
			Return("", custom_errors.ErrUsernameAlreadyExists)

		mux := newTestRouter(service)

		body := `{"username":"gopher","display_name":"Gopher","password":"hunter2password"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Short password", func(t *testing.T) {
		service := &auth_service_mock.Service{}
		mux := newTestRouter(service)

		body := `{"username":"gopher","display_name":"Gopher","password":"abc"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "Signup")
	})

	t.Run("Malformed body", func(t *testing.T) {
		service := &auth_service_mock.Service{}
		mux := newTestRouter(service)

		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service := &auth_service_mock.Service{}
		service.On("Login", mock.Anything, mock.MatchedBy(func(dto *model.LoginDTO) bool {
			return dto.Username == "gopher"
		})).Return("signed.jwt.token", nil)

		mux := newTestRouter(service)

		body := `{"username":"gopher","password":"hunter2password"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "signed.jwt.token")
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		service := &auth_service_mock.Service{}
		service.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginDTO")).
			Return("", custom_errors.ErrInvalidCredentials)

		mux := newTestRouter(service)

		body := `{"username":"gopher","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Missing fields", func(t *testing.T) {
		service := &auth_service_mock.Service{}
		mux := newTestRouter(service)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"gopher"}`))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "Login")
	})
}
