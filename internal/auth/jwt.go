package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inkwell-post-service/internal/config"
	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/model"
)

type Claims struct {
	AuthorID int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(cfg config.JWT) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTL,
	}
}

func (m *TokenManager) Issue(author *model.Author) (string, error) {
	now := time.Now()
	claims := Claims{
		AuthorID: author.ID,
		Username: author.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, custom_errors.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, custom_errors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, custom_errors.ErrInvalidToken
	}
	return claims, nil
}

type contextKey struct{}

// WithPrincipal stores the authenticated author id on the context. The core
// only ever sees the principal as a plain id.
func WithPrincipal(ctx context.Context, authorID int64) context.Context {
	return context.WithValue(ctx, contextKey{}, authorID)
}

func PrincipalFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(contextKey{}).(int64)
	return id, ok
}
