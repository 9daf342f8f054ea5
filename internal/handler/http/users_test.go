package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmadiev/storefront/models"
)

func TestGetAllUsers(t *testing.T) {
	auth := passingAuth(testUser)
	auth.listUsersFn = func(_ context.Context) ([]models.User, error) {
		return []models.User{
			{ID: 1, Name: "John", Email: "john@example.com", PasswordHash: "hash", ResetToken: "reset"},
			{ID: 2, Name: "Jane", Email: "jane@example.com"},
		}, nil
	}
	h := newTestHandler(t, auth, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, authedRequest(httptest.NewRequest(http.MethodGet, "/users", nil)))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.UsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Users, 2)
	assert.Equal(t, "jane@example.com", body.Users[1].Email)

	// sensitive fields must never appear in the payload
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.NotContains(t, rec.Body.String(), "reset")
	assert.NotContains(t, rec.Body.String(), "password")
}
