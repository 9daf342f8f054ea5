package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmadiev/storefront/internal/service"
	"github.com/akhmadiev/storefront/internal/store"
	"github.com/akhmadiev/storefront/internal/utils"
	"github.com/akhmadiev/storefront/models"
)

func TestAuthMiddleware_MissingToken(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Token is missing", body.Message)
	assert.Empty(t, body.Error)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrInvalidToken
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("x-access-token", "bad-token")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid token", body.Message)
	assert.NotEmpty(t, body.Error)
}

func TestAuthMiddleware_UserNoLongerExists(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Email: "ghost@example.com"}, nil
		},
		resolveUserFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("x-access-token", "orphan-token")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid token", body.Message)
}

func TestAuthMiddleware_StoresUserInContext(t *testing.T) {
	user := models.User{ID: 1, Name: "John", Email: "john@example.com"}

	var fromCtx models.User
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx, ok = utils.GetCurrentUserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	h := newTestHandler(t, passingAuth(user), nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("x-access-token", "valid-token")

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.True(t, ok)
	assert.Equal(t, user, fromCtx)
}
