package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ChesterTeam/UniMarket/internal/middleware"
	"github.com/ChesterTeam/UniMarket/internal/repository"
	"github.com/ChesterTeam/UniMarket/internal/service"
)

var testSecret = []byte("test-secret")

// newTestRouter wires the full API against an in-memory store, the same way
// main does.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.Open("", ":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	listingRepo := repository.NewListingRepository(db)
	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	log := zap.NewNop()
	catalogSvc := service.NewCatalogService(listingRepo, userRepo)
	authSvc := service.NewAuthService(userRepo, testSecret)
	chatSvc := service.NewChatService(messageRepo, listingRepo, userRepo, true)
	reviewSvc := service.NewReviewService(reviewRepo, listingRepo, userRepo)

	r := gin.New()
	api := r.Group("/api")
	protected := r.Group("/api")
	protected.Use(middleware.JWTAuth(testSecret))

	(&ListingHandler{Catalog: catalogSvc, Log: log}).RegisterRoutes(api, protected)
	(&UserHandler{Auth: authSvc, Log: log}).RegisterRoutes(api, protected)
	(&MessageHandler{Chat: chatSvc, Log: log}).RegisterRoutes(protected)
	(&ReviewHandler{Reviews: reviewSvc, Log: log}).RegisterRoutes(api, protected)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerAndLogin creates a user through the API and returns its id and a
// session token.
func registerAndLogin(t *testing.T, r *gin.Engine, name, email string) (string, string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name": name, "email": email, "password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var u struct {
		ID string `json:"id"`
	}
	decode(t, w, &u)

	w = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email": email, "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)
	require.NotEmpty(t, login.Token)
	return u.ID, login.Token
}
