package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultUploadsDir = "./uploads"
	DefaultURLBase    = "/static/uploads"
)

// Local keeps objects on disk under baseDir; the router serves them at urlBase.
type Local struct {
	baseDir string
	urlBase string
}

func NewLocal(baseDir, urlBase string) *Local {
	if baseDir == "" {
		baseDir = DefaultUploadsDir
	}
	if urlBase == "" {
		urlBase = DefaultURLBase
	}
	return &Local{baseDir: baseDir, urlBase: strings.TrimRight(urlBase, "/")}
}

func (l *Local) Dir() string { return l.baseDir }

func (l *Local) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	absPath := filepath.Join(l.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		_ = dst.Close()
		_ = os.Remove(absPath)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("close file: %w", err)
	}
	return l.urlBase + "/" + key, nil
}

// Delete ignores objects that are already gone.
func (l *Local) Delete(ctx context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(l.baseDir, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
