package artist

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"tattoohub/internal/domain"
	"tattoohub/internal/pkg/response"
)

type Service struct {
	artists ArtistRepository
	index   Indexer
	log     logrus.FieldLogger
}

func NewService(artists ArtistRepository, index Indexer, log logrus.FieldLogger) *Service {
	return &Service{artists: artists, index: index, log: log}
}

// Save upserts the caller's profile: 200 when it existed, 201 when created.
func (s *Service) Save(ctx context.Context, userID string, req SaveRequest) (response.Result, error) {
	existing, err := s.artists.FindByUserID(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("save artist: lookup")
		return response.Internal(err), nil
	}

	if existing != nil {
		apply(existing, req)
		if err := s.artists.Update(ctx, existing); err != nil {
			s.log.WithError(err).WithField("user_id", userID).Error("save artist: update")
			return response.Internal(err), nil
		}
		s.reindex(ctx, existing)
		return response.OK(existing), nil
	}

	a := &domain.Artist{
		UserID:       userID,
		Workplaces:   []string{},
		TattooStyles: []string{},
		Portfolio:    []domain.Image{},
	}
	apply(a, req)
	if err := s.artists.Create(ctx, a); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("save artist: create")
		return response.Internal(err), nil
	}
	s.reindex(ctx, a)
	return response.Created(a), nil
}

// SetImage replaces the profile picture or the cover image.
func (s *Service) SetImage(ctx context.Context, userID string, kind ImageKind, img domain.Image) (response.Result, error) {
	a, err := s.artists.FindByUserID(ctx, userID)
	if err != nil {
		s.log.WithError(err).Error("artist set image")
		return response.Internal(err), nil
	}
	if a == nil {
		return response.NotFound(), nil
	}

	switch kind {
	case CoverImage:
		a.CoverImage = &img
	default:
		a.ProfilePicture = &img
	}
	if err := s.artists.Update(ctx, a); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("set artist image")
		return response.Internal(err), nil
	}
	return response.OK(a), nil
}

// AddPortfolio appends images, refusing to grow past the portfolio cap.
func (s *Service) AddPortfolio(ctx context.Context, userID string, images []domain.Image) (response.Result, error) {
	a, err := s.artists.FindByUserID(ctx, userID)
	if err != nil {
		s.log.WithError(err).Error("artist add portfolio")
		return response.Internal(err), nil
	}
	if a == nil {
		return response.NotFound(), nil
	}
	if len(a.Portfolio)+len(images) > domain.MaxPortfolioItems {
		return response.Errors(http.StatusBadRequest,
			fmt.Sprintf("Portfolio cannot exceed %d images", domain.MaxPortfolioItems)), nil
	}

	a.Portfolio = append(a.Portfolio, images...)
	if err := s.artists.Update(ctx, a); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("add portfolio")
		return response.Internal(err), nil
	}
	return response.OK(a), nil
}

func (s *Service) GetAll(ctx context.Context) (response.Result, error) {
	artists, err := s.artists.FindAll(ctx)
	if err != nil {
		s.log.WithError(err).Error("artist get all")
		return response.Internal(err), nil
	}
	if len(artists) == 0 {
		return response.NotFound(), nil
	}
	return response.OK(artists), nil
}

func (s *Service) GetOne(ctx context.Context, id string) (response.Result, error) {
	a, err := s.artists.FindByID(ctx, id)
	if err != nil {
		s.log.WithError(err).Error("artist get one")
		return response.Internal(err), nil
	}
	if a == nil {
		return response.NotFound(), nil
	}
	return response.OK(a), nil
}

func (s *Service) GetOwnProfile(ctx context.Context, userID string) (response.Result, error) {
	a, err := s.artists.FindByUserID(ctx, userID)
	if err != nil {
		s.log.WithError(err).Error("artist get own profile")
		return response.Internal(err), nil
	}
	if a == nil {
		return response.NotFound(), nil
	}
	return response.OK(a), nil
}

// Delete removes the caller's profile: 200 {} when something was deleted, 404 {} otherwise.
func (s *Service) Delete(ctx context.Context, userID string) (response.Result, error) {
	n, err := s.artists.DeleteByUserID(ctx, userID)
	if err != nil {
		s.log.WithError(err).Error("artist delete")
		return response.Internal(err), nil
	}
	if n < 1 {
		return response.NotFound(), nil
	}
	if err := s.index.Delete(ctx, userID); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("artist search delete failed")
	}
	return response.OK(response.Empty()), nil
}

// Search answers with matching profiles in relevance order. An empty list is a 200.
func (s *Service) Search(ctx context.Context, q SearchQuery) (response.Result, error) {
	ids, err := s.index.Search(ctx, q.Q, q.Size)
	if err != nil {
		s.log.WithError(err).Error("artist search")
		return response.Internal(err), nil
	}
	artists, err := s.artists.FindByIDs(ctx, ids)
	if err != nil {
		s.log.WithError(err).Error("artist search")
		return response.Internal(err), nil
	}
	if artists == nil {
		artists = []domain.Artist{}
	}
	return response.OK(artists), nil
}

func (s *Service) reindex(ctx context.Context, a *domain.Artist) {
	if err := s.index.Index(ctx, a); err != nil {
		s.log.WithError(err).WithField("artist_id", a.ID).Warn("artist search index failed")
	}
}

func apply(a *domain.Artist, req SaveRequest) {
	a.FullName = req.FullName
	if req.ProfilePicture != nil {
		a.ProfilePicture = req.ProfilePicture
	}
	if req.CoverImage != nil {
		a.CoverImage = req.CoverImage
	}
	if req.Biography != nil {
		a.Biography = *req.Biography
	}
	if req.Workplaces != nil {
		a.Workplaces = req.Workplaces
	}
	if req.TattooStyles != nil {
		a.TattooStyles = req.TattooStyles
	}
	if req.Portfolio != nil {
		a.Portfolio = req.Portfolio
	}
	if req.Social != nil {
		a.Social = *req.Social
	}
	if req.Pricing != nil {
		a.Pricing = *req.Pricing
	}
}
