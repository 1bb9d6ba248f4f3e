package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattoohub/internal/config"
	"tattoohub/internal/database"
	"tattoohub/internal/logger"
	"tattoohub/internal/pkg/jwt"
	"tattoohub/internal/search"
	"tattoohub/internal/storage"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenMemory(t.Name())
	require.NoError(t, err)

	cfg := &config.Config{
		AppName:         "tattoohub",
		AppEnv:          "test",
		BcryptRounds:    4,
		RateLimitAuth:   20,
		RateLimitWindow: time.Minute,
		UploadsDir:      t.TempDir(),
		UploadsURLBase:  "/static/uploads",
		ImageMaxWidth:   64,
		ImageQuality:    80,
		ResetTokenTTL:   15 * time.Minute,
		ResetURL:        "http://localhost:3000/reset-password",
	}

	return New(Deps{
		Config: cfg,
		Log:    logger.Discard(),
		DB:     db,
		JWT:    jwt.New("test-secret", time.Hour),
		Store:  storage.NewLocal(cfg.UploadsDir, cfg.UploadsURLBase),
		Search: search.NewArtistIndex(nil, ""),
	})
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r *gin.Engine, email, userType string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/users", "", `{"email":"`+email+`","password":"secret1","userType":"`+userType+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRegisterLoginAndInfo(t *testing.T) {
	r := setupRouter(t)
	token := register(t, r, "ink@example.com", "artist")

	w := do(r, http.MethodPost, "/api/users", "", `{"email":"ink@example.com","password":"secret1","userType":"artist"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"User already exists"}]}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/auth", "", `{"email":"ink@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)

	w = do(r, http.MethodPost, "/api/auth", "", `{"email":"ink@example.com","password":"wrong-pass"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = do(r, http.MethodGet, "/api/users/info", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"ink@example.com"`)
	assert.NotContains(t, w.Body.String(), "secret1")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/users/info", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"No token, authorization denied"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/users/info", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"Token is not valid"}`, w.Body.String())
}

func TestArtistProfileUpsert(t *testing.T) {
	r := setupRouter(t)
	token := register(t, r, "artist@example.com", "artist")

	w := do(r, http.MethodGet, "/api/artists", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/artists", token, `{"fullName":"Sailor Jerry","tattooStyles":["Traditional"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = do(r, http.MethodPost, "/api/artists", token, `{"fullName":"Norman Collins"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Norman Collins")
	assert.Contains(t, w.Body.String(), "Traditional")

	w = do(r, http.MethodGet, "/api/artists/"+created.ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/artists/search?q=norman", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(r, http.MethodDelete, "/api/artists", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	w = do(r, http.MethodDelete, "/api/artists", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudioOwnership(t *testing.T) {
	r := setupRouter(t)
	owner := register(t, r, "owner@example.com", "studio")
	other := register(t, r, "other@example.com", "studio")

	w := do(r, http.MethodPost, "/api/studios", owner, `{"name":"Black Anchor","owners":["not-me"]}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"msg":"User must be an owner"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/users/info", owner, "")
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		ID string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))

	w = do(r, http.MethodPost, "/api/studios", owner, `{"name":"Black Anchor","owners":["`+me.ID+`"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var studio struct {
		ID string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &studio))

	w = do(r, http.MethodPost, "/api/studios", other, `{"_id":"`+studio.ID+`","name":"Hijacked"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodDelete, "/api/studios/"+studio.ID, other, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/studios/profile/me", owner, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Black Anchor")

	w = do(r, http.MethodDelete, "/api/studios/"+studio.ID, owner, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientProfileAndStyles(t *testing.T) {
	r := setupRouter(t)
	token := register(t, r, "client@example.com", "client")

	w := do(r, http.MethodGet, "/api/clients/profile/me", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/clients", token, `{"fullName":"Jane Doe"}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/api/clients/profile/me", token, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/styles", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
