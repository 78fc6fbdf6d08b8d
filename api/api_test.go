package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"goit/contacts-api/internal/model"
	"goit/contacts-api/internal/service"
	"goit/contacts-api/internal/storage"
	"goit/contacts-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestAPI(t *testing.T) *API {
	t.Helper()

	a, _ := newTestAPIWithAvatarDir(t)
	return a
}

// newTestAPIWithAvatarDir also exposes the avatar directory so tests can
// inspect what the local storage backend wrote.
func newTestAPIWithAvatarDir(t *testing.T) (*API, string) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	// A named shared in-memory database, so every pooled connection in
	// this test sees the same schema while tests stay isolated
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, d.AutoMigrate(model.User{}, model.Contact{}))

	dir := t.TempDir()

	store, err := storage.NewLocal(dir, "http://localhost:4000")
	require.NoError(t, err)

	a := New(
		d,
		security.NewTokenService(testSecret, time.Hour),
		service.NewNotifier(),
		service.NewAvatarService(store),
	)

	return a, dir
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, a *API, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func newRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, nil)
}

func serve(a *API, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

// registerUser registers a fresh user and returns their session token.
func registerUser(t *testing.T, a *API, email string) string {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/users/register", map[string]string{
		"email":    email,
		"password": "secret1",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	token, ok := body["token"].(string)
	require.True(t, ok, "register response must contain a token")
	require.NotEmpty(t, token)

	return token
}

func TestRouteNotFound(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodGet, "/nope", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Route not found", decodeBody(t, w)["message"])
}
