package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
)

func requestWithAuth(header string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/create-pull-request", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	return r
}

func TestBearerToken(t *testing.T) {
	t.Run("should extract a Bearer token", func(t *testing.T) {
		token, err := bearerToken(requestWithAuth("Bearer ghp_abc123"))

		require.NoError(t, err)
		assert.Equal(t, "ghp_abc123", token)
	})

	t.Run("should extract a token scheme credential", func(t *testing.T) {
		token, err := bearerToken(requestWithAuth("token ghp_abc123"))

		require.NoError(t, err)
		assert.Equal(t, "ghp_abc123", token)
	})

	t.Run("should accept mixed case schemes", func(t *testing.T) {
		token, err := bearerToken(requestWithAuth("bearer ghp_abc123"))

		require.NoError(t, err)
		assert.Equal(t, "ghp_abc123", token)
	})

	t.Run("should reject a missing header", func(t *testing.T) {
		_, err := bearerToken(requestWithAuth(""))

		assert.ErrorIs(t, err, domainErrors.ErrMissingToken)
	})

	t.Run("should reject an unknown scheme", func(t *testing.T) {
		_, err := bearerToken(requestWithAuth("Basic dXNlcjpwYXNz"))

		assert.ErrorIs(t, err, domainErrors.ErrInvalidAuthScheme)
	})

	t.Run("should reject a bare token without a scheme", func(t *testing.T) {
		_, err := bearerToken(requestWithAuth("ghp_abc123"))

		assert.ErrorIs(t, err, domainErrors.ErrInvalidAuthScheme)
	})

	t.Run("should reject a scheme with a blank credential", func(t *testing.T) {
		_, err := bearerToken(requestWithAuth("Bearer   "))

		assert.ErrorIs(t, err, domainErrors.ErrMissingToken)
	})
}

func TestOptionalBearerToken(t *testing.T) {
	t.Run("should allow a missing header", func(t *testing.T) {
		token, err := optionalBearerToken(requestWithAuth(""))

		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("should still reject a malformed header", func(t *testing.T) {
		_, err := optionalBearerToken(requestWithAuth("Basic dXNlcjpwYXNz"))

		assert.ErrorIs(t, err, domainErrors.ErrInvalidAuthScheme)
	})

	t.Run("should extract a present token", func(t *testing.T) {
		token, err := optionalBearerToken(requestWithAuth("Bearer ghp_abc123"))

		require.NoError(t, err)
		assert.Equal(t, "ghp_abc123", token)
	})
}
