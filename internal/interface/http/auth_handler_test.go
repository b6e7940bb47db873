package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-portal/internal/application"
	"github.com/oksasatya/go-auth-portal/internal/infrastructure/jsonfile"
	"github.com/oksasatya/go-auth-portal/internal/interface/middleware"
	"github.com/oksasatya/go-auth-portal/pkg/helpers"
)

type testEnv struct {
	engine *gin.Engine
	jwt    *helpers.JWTManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	store := jsonfile.NewUserStore(filepath.Join(t.TempDir(), "users.json"), logger)
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	svc := application.NewService(store, jwt, logger)
	h := NewAuthHandler(svc, logger)

	engine := gin.New()
	api := engine.Group("/api")
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.GET("/auth/me", middleware.BearerAuth(jwt), h.Me)
	api.GET("/health", NewHealthHandler().Check)

	return &testEnv{engine: engine, jwt: jwt}
}

func (e *testEnv) request(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Alice",
		"password": "secret123",
		"type":     "standard",
		"email":    "Alice@Example.com",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "user registered successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "alice@example.com", user["identifier"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "standard", user["type"])
	assert.NotContains(t, user, "password")
}

func TestRegisterConflict(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Alice", "password": "secret123", "email": "a@b.c",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Bob", "password": "secret456", "email": "A@B.C",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user with these details already exists", decode(t, w)["error"])
}

func TestRegisterValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body gin.H
		msg  string
	}{
		{"missing name", gin.H{"password": "secret123", "email": "a@b.c"}, "name and password are required"},
		{"bad type", gin.H{"name": "A", "password": "secret123", "type": "root", "email": "a@b.c"}, "unsupported user type"},
		{"short password", gin.H{"name": "A", "password": "12345", "email": "a@b.c"}, "password must be at least 6 characters"},
		{"bad agent code", gin.H{"name": "A", "password": "secret123", "type": "agent", "identifier": "12a45"}, "agent code must be exactly 5 digits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/api/auth/register", tt.body, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.msg, decode(t, w)["error"])
		})
	}
}

func TestRegisterMalformedJSON(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{oops"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "invalid payload", body["error"])
	assert.NotNil(t, body["details"])
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	env.request(t, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Agent", "password": "secret123", "type": "agent", "identifier": "00042",
	}, nil)

	w := env.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"password": "secret123", "type": "agent", "identifier": "00042",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "login successful", body["message"])
	assert.NotEmpty(t, body["token"])
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	env.request(t, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Alice", "password": "secret123", "email": "a@b.c",
	}, nil)

	// Wrong password and unknown user produce an identical response.
	w1 := env.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"password": "wrong-pass", "email": "a@b.c",
	}, nil)
	w2 := env.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"password": "secret123", "email": "nobody@b.c",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, w1.Code)
	require.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.Equal(t, decode(t, w1)["error"], decode(t, w2)["error"])
	assert.Equal(t, "invalid credentials", decode(t, w1)["error"])
}

func TestMeEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Alice", "password": "secret123", "email": "a@b.c",
	}, nil)
	token := decode(t, w)["token"].(string)

	w = env.request(t, http.MethodGet, "/api/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "a@b.c", user["identifier"])
}

func TestMeTokenFailures(t *testing.T) {
	env := newTestEnv(t)

	// Tampered/garbage token.
	w := env.request(t, http.MethodGet, "/api/auth/me", nil, map[string]string{
		"Authorization": "Bearer not.a.token",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid token", decode(t, w)["error"])

	// Missing token.
	w = env.request(t, http.MethodGet, "/api/auth/me", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "token not provided", decode(t, w)["error"])

	// Expired token carries its own cause, distinct from tampered.
	expiredJWT := helpers.NewJWTManager("test-secret", -time.Minute)
	expired, _, err := expiredJWT.Generate("some-id", "a@b.c", "standard")
	require.NoError(t, err)
	w = env.request(t, http.MethodGet, "/api/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + expired,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "token expired", decode(t, w)["error"])
}

func TestMeUserGone(t *testing.T) {
	env := newTestEnv(t)

	// Valid token pointing at a user the store no longer holds.
	token, _, err := env.jwt.Generate("ghost-id", "a@b.c", "standard")
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/api/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "user not found", decode(t, w)["error"])
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "server is running", body["message"])
}
