package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattoohub/internal/config"
)

func TestLocal_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "/static/uploads/")
	ctx := context.Background()

	url, err := store.Put(ctx, "images/u1/a.webp", "image/webp", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/images/u1/a.webp", url)

	b, err := os.ReadFile(filepath.Join(dir, "images", "u1", "a.webp"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))

	require.NoError(t, store.Delete(ctx, "images/u1/a.webp"))
	_, err = os.Stat(filepath.Join(dir, "images", "u1", "a.webp"))
	assert.True(t, os.IsNotExist(err))

	// already gone
	require.NoError(t, store.Delete(ctx, "images/u1/a.webp"))
}

func TestLocal_RejectsTraversal(t *testing.T) {
	store := NewLocal(t.TempDir(), "")
	for _, key := range []string{"", "../etc/passwd", "images/../../x", "a//b"} {
		_, err := store.Put(context.Background(), key, "image/webp", strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestNew_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	st, err := New(ctx, &config.Config{StorageDriver: "local", UploadsDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &Local{}, st)

	st, err = New(ctx, &config.Config{StorageDriver: "s3", S3Bucket: "ink", S3Region: "eu-west-1"})
	require.NoError(t, err)
	require.IsType(t, &S3{}, st)
	assert.Equal(t, "https://ink.s3.eu-west-1.amazonaws.com", st.(*S3).publicURL)

	_, err = New(ctx, &config.Config{StorageDriver: "ftp"})
	assert.Error(t, err)
}

func TestNewS3_CustomEndpoint(t *testing.T) {
	st, err := NewS3(S3Options{Bucket: "ink", Endpoint: "http://minio:9000/", AccessKeyID: "k", SecretAccessKey: "s"})
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/ink", st.publicURL)

	_, err = NewS3(S3Options{})
	assert.Error(t, err)
}
