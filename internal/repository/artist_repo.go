package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tattoohub/internal/domain"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) Create(ctx context.Context, a *domain.Artist) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return wrapWrite(r.db.WithContext(ctx).Create(a).Error)
}

func (r *ArtistRepository) Update(ctx context.Context, a *domain.Artist) error {
	return wrapWrite(r.db.WithContext(ctx).Save(a).Error)
}

func (r *ArtistRepository) FindByID(ctx context.Context, id string) (*domain.Artist, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ArtistRepository) FindByUserID(ctx context.Context, userID string) (*domain.Artist, error) {
	return r.first(ctx, "user_id = ?", userID)
}

// FindByIDs keeps the order of ids; unknown ids are skipped.
func (r *ArtistRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Artist, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []domain.Artist
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Artist, len(rows))
	for _, a := range rows {
		byID[a.ID] = a
	}
	out := make([]domain.Artist, 0, len(rows))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *ArtistRepository) FindAll(ctx context.Context) ([]domain.Artist, error) {
	var artists []domain.Artist
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&artists).Error
	return artists, err
}

// DeleteByUserID returns the number of removed rows.
func (r *ArtistRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Artist{})
	return tx.RowsAffected, tx.Error
}

func (r *ArtistRepository) first(ctx context.Context, query string, arg any) (*domain.Artist, error) {
	var a domain.Artist
	err := r.db.WithContext(ctx).Where(query, arg).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
