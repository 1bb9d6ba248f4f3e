package user

import (
	"context"

	"tattoohub/internal/domain"
	"tattoohub/internal/pkg/jwt"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
}

type TokenIssuer interface {
	GenerateToken(userID string) (jwt.TokenResult, error)
}
