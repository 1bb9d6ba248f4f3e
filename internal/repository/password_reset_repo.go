package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tattoohub/internal/domain"
)

type PasswordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, pr *domain.PasswordReset) error {
	if pr.ID == "" {
		pr.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(pr).Error
}

// FindActive returns the unused, unexpired reset for userID with the given token hash.
func (r *PasswordResetRepository) FindActive(ctx context.Context, userID, tokenHash string, now time.Time) (*domain.PasswordReset, error) {
	var pr domain.PasswordReset
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND token_hash = ? AND used_at IS NULL AND expires_at > ?", userID, tokenHash, now).
		First(&pr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// MarkUsed also invalidates every other open link of the same user.
func (r *PasswordResetRepository) MarkUsed(ctx context.Context, userID string, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.PasswordReset{}).
		Where("user_id = ? AND used_at IS NULL", userID).
		Update("used_at", now).Error
}

// DeleteStale removes expired or consumed rows.
func (r *PasswordResetRepository) DeleteStale(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at <= ? OR used_at IS NOT NULL", now).
		Delete(&domain.PasswordReset{})
	return tx.RowsAffected, tx.Error
}
