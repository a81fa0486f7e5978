package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChesterTeam/UniMarket/internal/model"
)

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	r := newTestRouter(t)
	registerAndLogin(t, r, "Anna", "anna@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name": "Clone", "email": "anna@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidatesPayload(t *testing.T) {
	r := newTestRouter(t)

	// Short password fails binding.
	w := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name": "Anna", "email": "anna@example.com", "password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name": "Anna", "email": "not-an-email", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	r := newTestRouter(t)
	registerAndLogin(t, r, "Anna", "anna@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email": "anna@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeAndPublicProfile(t *testing.T) {
	r := newTestRouter(t)
	id, token := registerAndLogin(t, r, "Anna", "anna@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me model.User
	decode(t, w, &me)
	assert.Equal(t, id, me.ID)

	// The password never leaves the service.
	assert.NotContains(t, w.Body.String(), "password123")

	w = doJSON(t, r, http.MethodGet, "/api/users/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateAvatar(t *testing.T) {
	r := newTestRouter(t)
	_, token := registerAndLogin(t, r, "Anna", "anna@example.com")

	w := doJSON(t, r, http.MethodPut, "/api/me/avatar", token, gin.H{
		"avatar": "data:image/png;base64,abc",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me model.User
	decode(t, w, &me)
	assert.Equal(t, "data:image/png;base64,abc", me.Avatar)
}
