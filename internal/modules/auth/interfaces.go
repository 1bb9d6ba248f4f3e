package auth

import (
	"context"
	"time"

	"tattoohub/internal/domain"
	"tattoohub/internal/mail"
	"tattoohub/internal/pkg/jwt"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, hash string) error
}

type ResetRepository interface {
	Create(ctx context.Context, pr *domain.PasswordReset) error
	FindActive(ctx context.Context, userID, tokenHash string, now time.Time) (*domain.PasswordReset, error)
	MarkUsed(ctx context.Context, userID string, now time.Time) error
}

type TokenIssuer interface {
	GenerateToken(userID string) (jwt.TokenResult, error)
}

// Mailer is the queue side of internal/mail.
type Mailer = mail.Publisher
