package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-post-service/internal/config"
	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/model"
)

func TestTokenManager_IssueAndValidate(t *testing.T) {
	manager := NewTokenManager(config.JWT{Secret: "test-secret", TokenTTL: time.Hour})

	token, err := manager.Issue(&model.Author{ID: 7, Username: "gopher"})
	require.NoError(t, err)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AuthorID)
	assert.Equal(t, "gopher", claims.Username)
}

func TestTokenManager_Validate_Expired(t *testing.T) {
	manager := NewTokenManager(config.JWT{Secret: "test-secret", TokenTTL: -time.Minute})

	token, err := manager.Issue(&model.Author{ID: 7, Username: "gopher"})
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, custom_errors.ErrInvalidToken)
}

func TestTokenManager_Validate_WrongSecret(t *testing.T) {
	issuer := NewTokenManager(config.JWT{Secret: "issuer-secret", TokenTTL: time.Hour})
	verifier := NewTokenManager(config.JWT{Secret: "other-secret", TokenTTL: time.Hour})

	token, err := issuer.Issue(&model.Author{ID: 7, Username: "gopher"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, custom_errors.ErrInvalidToken)
}

func TestTokenManager_Validate_Garbage(t *testing.T) {
	manager := NewTokenManager(config.JWT{Secret: "test-secret", TokenTTL: time.Hour})

	_, err := manager.Validate("not.a.token")
	assert.ErrorIs(t, err, custom_errors.ErrInvalidToken)
}

func TestPrincipalContext(t *testing.T) {
	ctx := context.Background()

	_, ok := PrincipalFromContext(ctx)
	assert.False(t, ok)

	ctx = WithPrincipal(ctx, 7)
	id, ok := PrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}
