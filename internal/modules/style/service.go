package style

import (
	"context"

	"tattoohub/internal/domain"
	"tattoohub/internal/pkg/response"
)

type StyleRepository interface {
	FindAll(ctx context.Context) ([]domain.TattooStyle, error)
}

type Service struct {
	styles StyleRepository
}

func NewService(styles StyleRepository) *Service {
	return &Service{styles: styles}
}

func (s *Service) GetAll(ctx context.Context) (response.Result, error) {
	styles, err := s.styles.FindAll(ctx)
	if err != nil {
		return response.Result{}, err
	}
	if len(styles) == 0 {
		return response.NotFound(), nil
	}
	return response.OK(styles), nil
}
