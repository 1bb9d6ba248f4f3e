package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 3600 * time.Second

var ErrInvalidToken = errors.New("invalid token")

type Service struct {
	secret []byte
	ttl    time.Duration
}

type UserClaim struct {
	ID string `json:"id"`
}

// Claims carries {"user": {"id": ...}} alongside the registered claims.
type Claims struct {
	User UserClaim `json:"user"`
	jwtlib.RegisteredClaims
}

// TokenResult mirrors the {error, token} shape returned to callers.
// Exactly one of Error and Token is set.
type TokenResult struct {
	Error error  `json:"-"`
	Token string `json:"token"`
}

func New(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) TTL() time.Duration { return s.ttl }

func (s *Service) GenerateToken(userID string) (TokenResult, error) {
	if len(s.secret) == 0 {
		err := errors.New("jwt secret is empty")
		return TokenResult{Error: err}, err
	}

	now := time.Now()
	claims := Claims{
		User: UserClaim{ID: userID},
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return TokenResult{Error: err}, err
	}
	return TokenResult{Token: token}, nil
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.User.ID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
