package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tattoohub/internal/domain"
	"tattoohub/internal/imaging"
)

const MaxFileSize = 10 * 1024 * 1024 // 10 MB

var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Service normalizes images, stores them and records them in the database.
type Service struct {
	repo   Repository
	store  ObjectStore
	images ImageProcessor
	log    logrus.FieldLogger
}

func NewService(repo Repository, store ObjectStore, images ImageProcessor, log logrus.FieldLogger) *Service {
	return &Service{repo: repo, store: store, images: images, log: log}
}

// Upload re-encodes the picture as WebP and stores it under images/<userId>/<id>.webp.
func (s *Service) Upload(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (*domain.Upload, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := io.ReadFull(file, buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	body := io.MultiReader(bytes.NewReader(buf[:n]), io.LimitReader(file, MaxFileSize))
	img, err := s.images.Process(body)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupported) || errors.Is(err, imaging.ErrTooLarge) {
			return nil, ErrInvalidMimeType
		}
		return nil, err
	}

	id := uuid.NewString()
	key := path.Join("images", userID, id+".webp")
	url, err := s.store.Put(ctx, key, imaging.ContentType, bytes.NewReader(img.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	upload := &domain.Upload{
		ID:        id,
		UserID:    userID,
		Key:       key,
		URL:       url,
		MimeType:  imaging.ContentType,
		Size:      int64(len(img.Data)),
		Width:     img.Width,
		Height:    img.Height,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, upload); err != nil {
		// rollback object on DB error
		if derr := s.store.Delete(ctx, key); derr != nil {
			s.log.WithError(derr).WithField("key", key).Warn("orphaned upload object")
		}
		return nil, fmt.Errorf("failed to save upload record: %w", err)
	}
	return upload, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Upload, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUploadNotFound
	}
	return u, nil
}

// Delete removes the stored object and the record; only the uploader may do it.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.UserID != userID {
		return ErrNotOwner
	}
	if err := s.store.Delete(ctx, u.Key); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Upload, error) {
	uploads, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if uploads == nil {
		uploads = []domain.Upload{}
	}
	return uploads, nil
}
