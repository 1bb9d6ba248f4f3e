package client

import (
	"context"

	"github.com/sirupsen/logrus"

	"tattoohub/internal/domain"
	"tattoohub/internal/pkg/response"
)

type Service struct {
	clients ClientRepository
	log     logrus.FieldLogger
}

func NewService(clients ClientRepository, log logrus.FieldLogger) *Service {
	return &Service{clients: clients, log: log}
}

func (s *Service) Save(ctx context.Context, userID string, req SaveRequest) (response.Result, error) {
	existing, err := s.clients.FindByUserID(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("save client: lookup")
		return response.Internal(err), nil
	}

	if existing != nil {
		apply(existing, req)
		if err := s.clients.Update(ctx, existing); err != nil {
			s.log.WithError(err).WithField("user_id", userID).Error("save client: update")
			return response.Internal(err), nil
		}
		return response.OK(existing), nil
	}

	cl := &domain.Client{UserID: userID}
	apply(cl, req)
	if err := s.clients.Create(ctx, cl); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("save client: create")
		return response.Internal(err), nil
	}
	return response.Created(cl), nil
}

func (s *Service) GetAll(ctx context.Context) (response.Result, error) {
	clients, err := s.clients.FindAll(ctx)
	if err != nil {
		s.log.WithError(err).Error("client get all")
		return response.Internal(err), nil
	}
	if len(clients) == 0 {
		return response.NotFound(), nil
	}
	return response.OK(clients), nil
}

func (s *Service) GetOne(ctx context.Context, id string) (response.Result, error) {
	cl, err := s.clients.FindByID(ctx, id)
	if err != nil {
		s.log.WithError(err).Error("client get one")
		return response.Internal(err), nil
	}
	if cl == nil {
		return response.NotFound(), nil
	}
	return response.OK(cl), nil
}

func (s *Service) GetOwnProfile(ctx context.Context, userID string) (response.Result, error) {
	cl, err := s.clients.FindByUserID(ctx, userID)
	if err != nil {
		s.log.WithError(err).Error("client get own profile")
		return response.Internal(err), nil
	}
	if cl == nil {
		return response.NotFound(), nil
	}
	return response.OK(cl), nil
}

func (s *Service) Delete(ctx context.Context, userID string) (response.Result, error) {
	n, err := s.clients.DeleteByUserID(ctx, userID)
	if err != nil {
		s.log.WithError(err).Error("client delete")
		return response.Internal(err), nil
	}
	if n < 1 {
		return response.NotFound(), nil
	}
	return response.OK(response.Empty()), nil
}

func apply(cl *domain.Client, req SaveRequest) {
	if req.FullName != nil {
		cl.FullName = *req.FullName
	}
	if req.Phone != nil {
		cl.Phone = *req.Phone
	}
	if req.ProfilePicture != nil {
		cl.ProfilePicture = req.ProfilePicture
	}
}
