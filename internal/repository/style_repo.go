package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tattoohub/internal/domain"
)

type StyleRepository struct {
	db *gorm.DB
}

func NewStyleRepository(db *gorm.DB) *StyleRepository {
	return &StyleRepository{db: db}
}

func (r *StyleRepository) FindAll(ctx context.Context) ([]domain.TattooStyle, error) {
	var styles []domain.TattooStyle
	err := r.db.WithContext(ctx).Order("name ASC").Find(&styles).Error
	return styles, err
}

// Upsert inserts styles by name, leaving existing names untouched.
func (r *StyleRepository) Upsert(ctx context.Context, styles []domain.TattooStyle) error {
	if len(styles) == 0 {
		return nil
	}
	for i := range styles {
		if styles[i].ID == "" {
			styles[i].ID = uuid.NewString()
		}
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&styles).Error
}
