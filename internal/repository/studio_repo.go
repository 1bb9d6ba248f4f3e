package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tattoohub/internal/domain"
)

type StudioRepository struct {
	db *gorm.DB
}

func NewStudioRepository(db *gorm.DB) *StudioRepository {
	return &StudioRepository{db: db}
}

// Create inserts the studio and its owner rows in one transaction.
func (r *StudioRepository) Create(ctx context.Context, s *domain.Studio) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return fmt.Errorf("create studio: %w", wrapWrite(err))
		}
		return replaceOwners(tx, s.ID, s.Owners)
	})
}

// Update saves the studio columns and replaces its owner set.
func (r *StudioRepository) Update(ctx context.Context, s *domain.Studio) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(s).Error; err != nil {
			return fmt.Errorf("update studio: %w", wrapWrite(err))
		}
		return replaceOwners(tx, s.ID, s.Owners)
	})
}

func (r *StudioRepository) FindByID(ctx context.Context, id string) (*domain.Studio, error) {
	var s domain.Studio
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadOwners(ctx, []*domain.Studio{&s}); err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByOwner returns the oldest studio userID owns, or nil.
func (r *StudioRepository) FindByOwner(ctx context.Context, userID string) (*domain.Studio, error) {
	var s domain.Studio
	err := r.db.WithContext(ctx).
		Joins("JOIN studio_owners ON studio_owners.studio_id = studios.id").
		Where("studio_owners.user_id = ?", userID).
		Order("studios.created_at ASC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadOwners(ctx, []*domain.Studio{&s}); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudioRepository) FindAll(ctx context.Context) ([]domain.Studio, error) {
	var studios []domain.Studio
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&studios).Error; err != nil {
		return nil, err
	}
	ptrs := make([]*domain.Studio, len(studios))
	for i := range studios {
		ptrs[i] = &studios[i]
	}
	if err := r.loadOwners(ctx, ptrs); err != nil {
		return nil, err
	}
	return studios, nil
}

// DeleteForOwner removes the studio only when userID is one of its owners.
func (r *StudioRepository) DeleteForOwner(ctx context.Context, studioID, userID string) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.StudioOwner{}).
			Where("studio_id = ? AND user_id = ?", studioID, userID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if err := tx.Where("studio_id = ?", studioID).Delete(&domain.StudioOwner{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", studioID).Delete(&domain.Studio{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

func (r *StudioRepository) loadOwners(ctx context.Context, studios []*domain.Studio) error {
	if len(studios) == 0 {
		return nil
	}
	ids := make([]string, len(studios))
	byID := make(map[string]*domain.Studio, len(studios))
	for i, s := range studios {
		ids[i] = s.ID
		s.Owners = []string{}
		byID[s.ID] = s
	}

	var rows []domain.StudioOwner
	if err := r.db.WithContext(ctx).
		Where("studio_id IN ?", ids).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return fmt.Errorf("load owners: %w", err)
	}
	for _, row := range rows {
		if s, ok := byID[row.StudioID]; ok {
			s.Owners = append(s.Owners, row.UserID)
		}
	}
	return nil
}

func replaceOwners(tx *gorm.DB, studioID string, owners []string) error {
	if err := tx.Where("studio_id = ?", studioID).Delete(&domain.StudioOwner{}).Error; err != nil {
		return fmt.Errorf("clear owners: %w", err)
	}
	seen := make(map[string]struct{}, len(owners))
	rows := make([]domain.StudioOwner, 0, len(owners))
	for _, uid := range owners {
		if _, ok := seen[uid]; ok || uid == "" {
			continue
		}
		seen[uid] = struct{}{}
		rows = append(rows, domain.StudioOwner{StudioID: studioID, UserID: uid})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("insert owners: %w", err)
	}
	return nil
}
