package upload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattoohub/internal/database"
	"tattoohub/internal/imaging"
	"tattoohub/internal/logger"
	"tattoohub/internal/middleware"
	"tattoohub/internal/repository"
	"tattoohub/internal/storage"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func setup(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenMemory("upload_" + t.Name())
	require.NoError(t, err)
	dir := t.TempDir()

	svc := NewService(
		repository.NewUploadRepository(db),
		storage.NewLocal(dir, "/static/uploads"),
		imaging.NewProcessor(32, 80),
		logger.Discard(),
	)

	r := gin.New()
	r.Use(middleware.ErrorHandler(logger.Discard()))
	fakeAuth := func(c *gin.Context) {
		c.Set(middleware.UserIDKey, c.GetHeader("X-Test-User-ID"))
		c.Next()
	}
	NewHandler(svc).RegisterRoutes(r.Group("/api"), fakeAuth)
	return r, dir
}

func multipartBody(t *testing.T, name string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func doUpload(r http.Handler, userID string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Test-User-ID", userID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpload_StoresWebP(t *testing.T) {
	router, dir := setup(t)

	body, ct := multipartBody(t, "koi.png", pngBytes(t, 64, 16))
	w := doUpload(router, "u1", body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	assert.Contains(t, w.Body.String(), `"publicId"`)
	assert.Contains(t, w.Body.String(), `"url":"/static/uploads/images/u1/`)
	assert.Contains(t, w.Body.String(), `"width":32`)

	matches, err := filepath.Glob(filepath.Join(dir, "images", "u1", "*.webp"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestUpload_RejectsNonImages(t *testing.T) {
	router, _ := setup(t)

	body, ct := multipartBody(t, "notes.txt", []byte(strings.Repeat("hello ", 100)))
	w := doUpload(router, "u1", body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only JPEG, PNG, GIF and WebP images are allowed")
}

func TestUpload_MissingFile(t *testing.T) {
	router, _ := setup(t)

	w := doUpload(router, "u1", bytes.NewBufferString(""), "multipart/form-data; boundary=x")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDelete_OnlyOwner(t *testing.T) {
	router, dir := setup(t)

	body, ct := multipartBody(t, "koi.png", pngBytes(t, 16, 16))
	w := doUpload(router, "u1", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)

	matches, _ := filepath.Glob(filepath.Join(dir, "images", "u1", "*.webp"))
	require.Len(t, matches, 1)
	id := strings.TrimSuffix(filepath.Base(matches[0]), ".webp")

	del := func(userID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/api/uploads/"+id, nil)
		req.Header.Set("X-Test-User-ID", userID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusForbidden, del("u2").Code)
	assert.Equal(t, http.StatusOK, del("u1").Code)
	assert.Equal(t, http.StatusNotFound, del("u1").Code)

	_, err := os.Stat(matches[0])
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestService_Upload_TooLarge(t *testing.T) {
	svc := NewService(nil, nil, nil, logger.Discard())

	_, err := svc.Upload(context.Background(), "u1", &multipart.FileHeader{Size: MaxFileSize + 1})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.Upload(context.Background(), "u1", &multipart.FileHeader{Size: 0})
	assert.ErrorIs(t, err, ErrEmptyFile)
}
