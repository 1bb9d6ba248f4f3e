package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, 13, cfg.BcryptRounds)
	assert.Equal(t, "local", cfg.StorageDriver)
	assert.Equal(t, 15*time.Minute, cfg.ResetTokenTTL)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_TTL", "10m")
	t.Setenv("BCRYPT_ROUNDS", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.com, https://b.com ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptRounds)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_GCS(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "gcs")
	t.Setenv("GCS_BUCKET", "tattoohub-images")
	t.Setenv("GCS_CREDENTIALS_PATH", "/etc/gcs/key.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gcs", cfg.StorageDriver)
	assert.Equal(t, "tattoohub-images", cfg.GCSBucket)
	assert.Equal(t, "/etc/gcs/key.json", cfg.GCSCredentialsPath)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad ttl":         {"JWT_TTL": "soon"},
		"rounds too low":  {"BCRYPT_ROUNDS": "2"},
		"unknown storage": {"STORAGE_DRIVER": "ftp"},
		"gcs w/o bucket":  {"STORAGE_DRIVER": "gcs"},
		"prod default":    {"APP_ENV": "production"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
