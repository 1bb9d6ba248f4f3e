package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"tattoohub/internal/domain"
	"tattoohub/internal/mail"
	"tattoohub/internal/pkg/password"
	"tattoohub/internal/pkg/response"
)

const defaultResetTTL = 15 * time.Minute

type Options struct {
	AppName      string
	BcryptRounds int
	ResetTTL     time.Duration
	ResetURL     string // link base; "/<userId>/<token>" is appended
}

type Service struct {
	users  UserRepository
	resets ResetRepository
	tokens TokenIssuer
	mailer Mailer
	opts   Options
	log    logrus.FieldLogger
	now    func() time.Time
}

func NewService(users UserRepository, resets ResetRepository, tokens TokenIssuer, mailer Mailer, opts Options, log logrus.FieldLogger) *Service {
	if opts.ResetTTL <= 0 {
		opts.ResetTTL = defaultResetTTL
	}
	return &Service{
		users:  users,
		resets: resets,
		tokens: tokens,
		mailer: mailer,
		opts:   opts,
		log:    log,
		now:    time.Now,
	}
}

// Login checks the credentials and issues a token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (response.Result, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.WithError(err).Error("login: lookup by email")
		return response.Internal(err), nil
	}
	if u == nil || !password.Compare(u.PasswordHash, req.Password) {
		return response.Errors(http.StatusBadRequest, msgInvalidCredentials), nil
	}

	tok, err := s.tokens.GenerateToken(u.ID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", u.ID).Error("login: sign token")
		return response.Internal(err), nil
	}
	return response.OK(TokenResponse{Token: tok.Token}), nil
}

// Me resolves the authenticated user.
func (s *Service) Me(ctx context.Context, userID string) (response.Result, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return response.Result{}, err
	}
	if u == nil {
		return response.NotFound(), nil
	}
	return response.OK(u), nil
}

// ForgotPassword stores a one-time link for the account and queues the email.
func (s *Service) ForgotPassword(ctx context.Context, email string) (response.Result, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return response.Result{}, err
	}
	if u == nil {
		return response.Errors(http.StatusNotFound, msgUserNotFound), nil
	}

	token, err := newResetToken()
	if err != nil {
		return response.Internal(err), nil
	}

	now := s.now()
	pr := &domain.PasswordReset{
		UserID:    u.ID,
		TokenHash: hashToken(token),
		ExpiresAt: now.Add(s.opts.ResetTTL),
	}
	if err := s.resets.Create(ctx, pr); err != nil {
		s.log.WithError(err).WithField("user_id", u.ID).Error("forgot password: store reset")
		return response.Internal(err), nil
	}

	job := mail.EmailJob{
		To:       u.Email,
		Template: mail.TemplateResetPassword,
		Data: map[string]any{
			"AppName":   s.opts.AppName,
			"ResetURL":  s.opts.ResetURL + "/" + u.ID + "/" + token,
			"ExpiresIn": s.opts.ResetTTL.String(),
		},
	}
	if err := s.mailer.Publish(ctx, job); err != nil {
		s.log.WithError(err).WithField("user_id", u.ID).Error("forgot password: publish email")
		return response.Internal(err), nil
	}
	return response.Message(http.StatusOK, msgResetSent), nil
}

// ResetPassword consumes the link and sets the new password.
func (s *Service) ResetPassword(ctx context.Context, userID, token string, req ResetPasswordRequest) (response.Result, error) {
	now := s.now()
	pr, err := s.resets.FindActive(ctx, userID, hashToken(token), now)
	if err != nil {
		return response.Result{}, err
	}
	if pr == nil {
		return response.Errors(http.StatusBadRequest, msgInvalidLink), nil
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return response.Result{}, err
	}
	if u == nil {
		return response.Errors(http.StatusBadRequest, msgInvalidLink), nil
	}

	hash, err := password.Hash(req.Password, s.opts.BcryptRounds)
	if err != nil {
		return response.Internal(err), nil
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("reset password: update")
		return response.Internal(err), nil
	}
	if err := s.resets.MarkUsed(ctx, userID, now); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("reset password: mark used")
	}

	notice := mail.EmailJob{
		To:       u.Email,
		Template: mail.TemplatePasswordChanged,
		Data:     map[string]any{"AppName": s.opts.AppName},
	}
	if err := s.mailer.Publish(ctx, notice); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("reset password: publish notice")
	}
	return response.Message(http.StatusOK, msgPasswordReset), nil
}

func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
