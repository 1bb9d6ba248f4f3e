package studio

import (
	"context"

	"tattoohub/internal/domain"
)

type StudioRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Studio, error)
	FindByOwner(ctx context.Context, userID string) (*domain.Studio, error)
	FindAll(ctx context.Context) ([]domain.Studio, error)
	Create(ctx context.Context, s *domain.Studio) error
	Update(ctx context.Context, s *domain.Studio) error
	DeleteForOwner(ctx context.Context, studioID, userID string) (int64, error)
}
