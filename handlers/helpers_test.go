package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"postboard/auth"
	"postboard/cache"
	"postboard/database"
	"postboard/handlers"
	"postboard/routes"
)

const (
	testSecret   = "test-secret-key-for-testing-only"
	testEmail    = "u@e.com"
	testPassword = "testpassword"
)

type testEnv struct {
	Router *gin.Engine
	Tokens *auth.TokenService
	Cache  *cache.PostCache
}

// newTestEnv wires the real router against a throwaway SQLite database and a
// fresh cache, so every test starts from a clean slate.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.Connect(dbPath))
	t.Cleanup(func() {
		require.NoError(t, database.Disconnect())
	})

	tokens, err := auth.NewTokenService(testSecret, "HS256", 15*time.Minute)
	require.NoError(t, err)

	postCache := cache.NewPostCache(100, 5*time.Minute)

	handlers.SetTokenService(tokens)
	handlers.SetPostCache(postCache)

	return &testEnv{
		Router: routes.SetupRouter(tokens, []string{"http://localhost:3000"}),
		Tokens: tokens,
		Cache:  postCache,
	}
}

// do performs a request against the router. An empty token leaves the
// Authorization header unset.
func (e *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func credentialsBody(email, password string) string {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	return string(body)
}

// signup registers an account and asserts success.
func (e *testEnv) signup(t *testing.T, email, password string) {
	t.Helper()

	w := e.do(t, http.MethodPost, "/auth/signup", credentialsBody(email, password), "")
	require.Equal(t, http.StatusCreated, w.Code, "signup failed: %s", w.Body.String())
}

// login returns a bearer token for an existing account.
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/auth/login", credentialsBody(email, password), "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
