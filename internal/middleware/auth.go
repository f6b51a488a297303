package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"inkwell-post-service/internal/auth"
	"inkwell-post-service/internal/logger"
)

const bearerPrefix = "Bearer "

// Auth validates the Bearer token and stores the principal id on the request
// context for handlers behind it.
type Auth struct {
	tokens *auth.TokenManager
	log    *logger.Logger
}

func NewAuth(tokens *auth.TokenManager, log *logger.Logger) *Auth {
	return &Auth{tokens: tokens, log: log}
}

func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		claims, err := a.tokens.Validate(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			a.log.Debug("Rejected token", slog.String("error", err.Error()))
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), claims.AuthorID)))
	})
}
