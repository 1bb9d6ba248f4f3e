package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"tattoohub/internal/domain"
	"tattoohub/internal/pkg/password"
	"tattoohub/internal/pkg/response"
	"tattoohub/internal/repository"
)

const msgUserExists = "User already exists"

type Service struct {
	users  UserRepository
	tokens TokenIssuer
	rounds int
	log    logrus.FieldLogger
}

func NewService(users UserRepository, tokens TokenIssuer, bcryptRounds int, log logrus.FieldLogger) *Service {
	return &Service{users: users, tokens: tokens, rounds: bcryptRounds, log: log}
}

// Register creates the account and answers with a fresh token.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (response.Result, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.WithError(err).Error("register: lookup by email")
		return response.Internal(err), nil
	}
	if existing != nil {
		return response.Errors(http.StatusBadRequest, msgUserExists), nil
	}

	hash, err := password.Hash(req.Password, s.rounds)
	if err != nil {
		return response.Internal(err), nil
	}

	u := &domain.User{Email: req.Email, PasswordHash: hash, UserType: req.UserType}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return response.Errors(http.StatusBadRequest, msgUserExists), nil
		}
		s.log.WithError(err).Error("register: create user")
		return response.Internal(err), nil
	}

	tok, err := s.tokens.GenerateToken(u.ID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", u.ID).Error("register: sign token")
		return response.Internal(err), nil
	}
	return response.Created(TokenResponse{Token: tok.Token}), nil
}

// Info returns the caller's account; the password hash never leaves the store.
func (s *Service) Info(ctx context.Context, userID string) (response.Result, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return response.Result{}, err
	}
	if u == nil {
		return response.NotFound(), nil
	}
	return response.OK(u), nil
}

func (s *Service) SavePicture(ctx context.Context, userID string, img domain.Image) (response.Result, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return response.Result{}, err
	}
	if u == nil {
		return response.NotFound(), nil
	}

	u.ProfilePicture = &img
	if err := s.users.Update(ctx, u); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("save user picture")
		return response.Internal(err), nil
	}
	return response.OK(u), nil
}
