package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrielsara/portfolio-backend/internal/service"
	"github.com/fahrielsara/portfolio-backend/internal/testhelpers"
)

// Exercises the content document against a real PostgreSQL, including the
// JSONB round trip the sqlite-backed tests cannot cover.
func TestContentServicePostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()

	contentService := service.NewContentService(db, nil)

	content, err := contentService.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[Ad Soyad]", content.Profile.Name)

	content.Profile.Name = "Fahri Elsara"
	content.Bio.About = "Merhaba, ben Fahri."
	require.NoError(t, contentService.Set(ctx, content))

	// Saving again must update the single row, not add a second one.
	content.Profile.Title = "Full Stack Developer"
	require.NoError(t, contentService.Set(ctx, content))

	got, err := contentService.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Fahri Elsara", got.Profile.Name)
	assert.Equal(t, "Full Stack Developer", got.Profile.Title)
	assert.Len(t, got.Services, 4)

	var count int64
	require.NoError(t, db.Table("site_content_records").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
