package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("secret", time.Hour)

	res, err := svc.GenerateToken("user-1")
	require.NoError(t, err)
	assert.Nil(t, res.Error)
	assert.NotEmpty(t, res.Token)

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.User.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestNew_DefaultTTL(t *testing.T) {
	assert.Equal(t, 3600*time.Second, New("s", 0).TTL())
}

func TestValidate_WrongSecret(t *testing.T) {
	res, err := New("a", time.Hour).GenerateToken("u")
	require.NoError(t, err)

	_, err = New("b", time.Hour).ValidateToken(res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	svc := &Service{secret: []byte("a"), ttl: -time.Minute}
	res, err := svc.GenerateToken("u")
	require.NoError(t, err)

	_, err = svc.ValidateToken(res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerate_EmptySecret(t *testing.T) {
	res, err := New("", time.Hour).GenerateToken("u")
	assert.Error(t, err)
	assert.Equal(t, err, res.Error)
	assert.Empty(t, res.Token)
}
