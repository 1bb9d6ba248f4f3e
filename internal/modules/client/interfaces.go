package client

import (
	"context"

	"tattoohub/internal/domain"
)

type ClientRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Client, error)
	FindAll(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}
