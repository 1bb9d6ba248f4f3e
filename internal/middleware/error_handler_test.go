package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tattoohub/internal/logger"
	"tattoohub/internal/pkg/httperr"
)

func errorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(logger.Discard()))
	r.GET("/owner", func(c *gin.Context) { _ = c.Error(httperr.ErrNotOwner) })
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(errors.New("db down")) })
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })
	r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/owner", http.StatusForbidden, `{"msg":"User must be an owner"}`},
		{"/boom", http.StatusInternalServerError, `{"msg":"Server error","error":"db down"}`},
		{"/panic", http.StatusInternalServerError, `{"msg":"Server error","error":"panic: kaboom"}`},
		{"/ok", http.StatusOK, `{"ok":true}`},
	}

	router := errorRouter()
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	errorRouter().ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
