package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattoohub/internal/pkg/jwt"
)

func protectedRouter(t *testing.T, svc *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(JWTAuth(svc))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return router
}

func TestJWTAuth_ValidBearerToken(t *testing.T) {
	svc := jwt.New("test-secret-123", time.Hour)
	res, err := svc.GenerateToken("user-42")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+res.Token)
	protectedRouter(t, svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestJWTAuth_LegacyHeader(t *testing.T) {
	svc := jwt.New("test-secret-123", time.Hour)
	res, err := svc.GenerateToken("user-7")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-auth-token", res.Token)
	protectedRouter(t, svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-7")
}

func TestJWTAuth_Rejects(t *testing.T) {
	other := jwt.New("other-secret", time.Hour)
	foreign, err := other.GenerateToken("user-1")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		value  string
		msg    string
	}{
		{"no token", "", "", "No token, authorization denied"},
		{"wrong scheme", "Authorization", "Basic dGVzdA==", "No token, authorization denied"},
		{"garbage", "Authorization", "Bearer invalid-jwt-here", "Token is not valid"},
		{"wrong secret", "Authorization", "Bearer " + foreign.Token, "Token is not valid"},
	}

	svc := jwt.New("secret", time.Hour)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(JWTAuth(svc))
			router.GET("/protected", func(c *gin.Context) {
				t.Fatal("handler should not be reached")
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tc.msg)
		})
	}
}
