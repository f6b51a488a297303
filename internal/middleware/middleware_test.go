package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inkwell-post-service/internal/auth"
	"inkwell-post-service/internal/config"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
	metrics_mock "inkwell-post-service/mocks/metrics"
)

func TestChain_Order(t *testing.T) {
	var order []string

	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), tag("outer"), tag("inner"))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestRecovery(t *testing.T) {
	log := logger.New("test")

	handler := Recovery(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMetrics(t *testing.T) {
	provider := &metrics_mock.MetricsProvider{}
	provider.On("IncrementHTTPRequests", http.MethodGet, "/posts", "404").Once()
	provider.On("RecordHTTPRequestDuration", http.MethodGet, "/posts", "404", mock.AnythingOfType("time.Duration")).Once()

	handler := Metrics(provider)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts", nil))

	provider.AssertExpectations(t)
}

func TestAuth_Require(t *testing.T) {
	log := logger.New("test")
	tokens := auth.NewTokenManager(config.JWT{Secret: "test-secret", TokenTTL: time.Hour})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.PrincipalFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(5), id)
		w.WriteHeader(http.StatusNoContent)
	})
	handler := NewAuth(tokens, log).Require(next)

	t.Run("Valid token injects the principal", func(t *testing.T) {
		token, err := tokens.Issue(&model.Author{ID: 5, Username: "gopher"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/posts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/posts", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/posts", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/posts", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
