package upload

import (
	"context"
	"io"

	"tattoohub/internal/domain"
	"tattoohub/internal/imaging"
)

type Repository interface {
	Create(ctx context.Context, u *domain.Upload) error
	GetByID(ctx context.Context, id string) (*domain.Upload, error)
	Delete(ctx context.Context, id string) error
	ListByUserID(ctx context.Context, userID string) ([]domain.Upload, error)
}

// ObjectStore is implemented by every internal/storage backend.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

type ImageProcessor interface {
	Process(r io.Reader) (*imaging.Result, error)
}
