package style

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattoohub/internal/database"
	"tattoohub/internal/domain"
	"tattoohub/internal/repository"
)

func TestService_GetAll(t *testing.T) {
	db, err := database.OpenMemory("style_" + t.Name())
	require.NoError(t, err)
	repo := repository.NewStyleRepository(db)
	svc := NewService(repo)
	ctx := context.Background()

	res, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.Status)

	require.NoError(t, repo.Upsert(ctx, []domain.TattooStyle{{Name: "Traditional"}, {Name: "Japanese"}}))

	res, err = svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Len(t, res.Payload, 2)
}
