package studio

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"

	"tattoohub/internal/domain"
	"tattoohub/internal/pkg/httperr"
	"tattoohub/internal/pkg/response"
)

type Service struct {
	studios StudioRepository
	log     logrus.FieldLogger
}

func NewService(studios StudioRepository, log logrus.FieldLogger) *Service {
	return &Service{studios: studios, log: log}
}

// Save upserts a studio. The requester has to be listed in the submitted
// owners and, for an existing studio, in its current owners; otherwise
// httperr.ErrNotOwner is returned and nothing is written.
func (s *Service) Save(ctx context.Context, userID string, req SaveRequest) (response.Result, error) {
	if len(req.Owners) > 0 && !slices.Contains(req.Owners, userID) {
		return response.Result{}, httperr.ErrNotOwner
	}

	existing, err := s.lookup(ctx, userID, req.ID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("save studio: lookup")
		return response.Internal(err), nil
	}

	if existing != nil {
		if !existing.HasOwner(userID) {
			return response.Result{}, httperr.ErrNotOwner
		}
		apply(existing, req)
		if err := s.studios.Update(ctx, existing); err != nil {
			s.log.WithError(err).WithField("studio_id", existing.ID).Error("save studio: update")
			return response.Internal(err), nil
		}
		return response.OK(existing), nil
	}

	if len(req.Owners) == 0 {
		return response.Result{}, httperr.ErrNotOwner
	}
	st := &domain.Studio{
		Photos:        []domain.Image{},
		BusinessHours: []domain.BusinessHours{},
	}
	apply(st, req)
	if err := s.studios.Create(ctx, st); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("save studio: create")
		return response.Internal(err), nil
	}
	return response.Created(st), nil
}

// SaveImage sets the profile or cover picture of a studio the requester owns.
func (s *Service) SaveImage(ctx context.Context, userID string, req ImageRequest) (response.Result, error) {
	st, res, err := s.ownedStudio(ctx, userID, req.StudioID)
	if st == nil {
		return res, err
	}

	img := req.Image
	if req.Kind == KindCover {
		st.CoverImage = &img
	} else {
		st.ProfilePicture = &img
	}
	if err := s.studios.Update(ctx, st); err != nil {
		s.log.WithError(err).WithField("studio_id", st.ID).Error("save studio image")
		return response.Internal(err), nil
	}
	return response.OK(st), nil
}

// SaveImages appends gallery photos, keeping the gallery within its cap.
func (s *Service) SaveImages(ctx context.Context, userID string, req ImagesRequest) (response.Result, error) {
	st, res, err := s.ownedStudio(ctx, userID, req.StudioID)
	if st == nil {
		return res, err
	}
	if len(st.Photos)+len(req.Images) > domain.MaxStudioPhotos {
		return response.Errors(http.StatusBadRequest,
			fmt.Sprintf("A studio cannot have more than %d photos", domain.MaxStudioPhotos)), nil
	}

	st.Photos = append(st.Photos, req.Images...)
	if err := s.studios.Update(ctx, st); err != nil {
		s.log.WithError(err).WithField("studio_id", st.ID).Error("save studio images")
		return response.Internal(err), nil
	}
	return response.OK(st), nil
}

func (s *Service) GetAll(ctx context.Context) (response.Result, error) {
	studios, err := s.studios.FindAll(ctx)
	if err != nil {
		s.log.WithError(err).Error("studio get all")
		return response.Internal(err), nil
	}
	if len(studios) == 0 {
		return response.NotFound(), nil
	}
	return response.OK(studios), nil
}

func (s *Service) GetOne(ctx context.Context, id string) (response.Result, error) {
	st, err := s.studios.FindByID(ctx, id)
	if err != nil {
		s.log.WithError(err).Error("studio get one")
		return response.Internal(err), nil
	}
	if st == nil {
		return response.NotFound(), nil
	}
	return response.OK(st), nil
}

func (s *Service) GetOwnProfile(ctx context.Context, userID string) (response.Result, error) {
	st, err := s.studios.FindByOwner(ctx, userID)
	if err != nil {
		s.log.WithError(err).Error("studio get own profile")
		return response.Internal(err), nil
	}
	if st == nil {
		return response.NotFound(), nil
	}
	return response.OK(st), nil
}

// Delete removes the studio when the requester owns it.
func (s *Service) Delete(ctx context.Context, userID, studioID string) (response.Result, error) {
	n, err := s.studios.DeleteForOwner(ctx, studioID, userID)
	if err != nil {
		s.log.WithError(err).Error("studio delete")
		return response.Internal(err), nil
	}
	if n < 1 {
		return response.NotFound(), nil
	}
	return response.OK(response.Empty()), nil
}

func (s *Service) lookup(ctx context.Context, userID, studioID string) (*domain.Studio, error) {
	if studioID != "" {
		return s.studios.FindByID(ctx, studioID)
	}
	return s.studios.FindByOwner(ctx, userID)
}

// ownedStudio returns the studio, or a nil studio plus what to answer instead.
func (s *Service) ownedStudio(ctx context.Context, userID, studioID string) (*domain.Studio, response.Result, error) {
	st, err := s.studios.FindByID(ctx, studioID)
	if err != nil {
		s.log.WithError(err).WithField("studio_id", studioID).Error("studio lookup")
		return nil, response.Internal(err), nil
	}
	if st == nil {
		return nil, response.NotFound(), nil
	}
	if !st.HasOwner(userID) {
		return nil, response.Result{}, httperr.ErrNotOwner
	}
	return st, response.Result{}, nil
}

func apply(st *domain.Studio, req SaveRequest) {
	st.Name = req.Name
	if len(req.Owners) > 0 {
		st.Owners = req.Owners
	}
	if req.Description != nil {
		st.Description = *req.Description
	}
	if req.ProfilePicture != nil {
		st.ProfilePicture = req.ProfilePicture
	}
	if req.CoverImage != nil {
		st.CoverImage = req.CoverImage
	}
	if req.Photos != nil {
		st.Photos = req.Photos
	}
	if req.Social != nil {
		st.Social = *req.Social
	}
	if req.Location != nil {
		st.Location = *req.Location
	}
	if req.BusinessHours != nil {
		st.BusinessHours = req.BusinessHours
	}
}
