package artist

import (
	"context"

	"tattoohub/internal/domain"
)

type ArtistRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Artist, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Artist, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Artist, error)
	FindAll(ctx context.Context) ([]domain.Artist, error)
	Create(ctx context.Context, a *domain.Artist) error
	Update(ctx context.Context, a *domain.Artist) error
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}

// Indexer is the search side; see internal/search.ArtistIndex.
type Indexer interface {
	Index(ctx context.Context, a *domain.Artist) error
	Delete(ctx context.Context, userID string) error
	Search(ctx context.Context, q string, size int) ([]string, error)
}
