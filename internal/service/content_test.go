package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrielsara/portfolio-backend/internal/models"
	"github.com/fahrielsara/portfolio-backend/internal/testhelpers"
)

func TestContentService(t *testing.T) {
	ctx := context.Background()

	t.Run("serves the default document when storage is empty", func(t *testing.T) {
		svc := NewContentService(testhelpers.SetupSQLite(t), nil)

		content, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, DefaultSiteContent(), content)
	})

	t.Run("set then get round-trips the document", func(t *testing.T) {
		svc := NewContentService(testhelpers.SetupSQLite(t), nil)

		want := DefaultSiteContent()
		want.Profile.Name = "Ayşe Yılmaz"
		want.Bio.Education = []models.EducationEntry{
			{School: "Ege Üniversitesi", Degree: "Bilgisayar Mühendisliği", Year: "2019"},
		}
		require.NoError(t, svc.Set(ctx, want))

		got, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("last write wins", func(t *testing.T) {
		svc := NewContentService(testhelpers.SetupSQLite(t), nil)

		first := DefaultSiteContent()
		first.Profile.Title = "Backend Developer"
		require.NoError(t, svc.Set(ctx, first))

		second := DefaultSiteContent()
		second.Profile.Title = "Creative Developer"
		require.NoError(t, svc.Set(ctx, second))

		got, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Creative Developer", got.Profile.Title)
	})

	t.Run("rejects icons outside the closed set", func(t *testing.T) {
		svc := NewContentService(testhelpers.SetupSQLite(t), nil)

		bad := DefaultSiteContent()
		bad.Services[0].Icon = "sparkles"
		assert.Error(t, svc.Set(ctx, bad))

		bad = DefaultSiteContent()
		bad.Socials[0].Icon = "bird"
		assert.Error(t, svc.Set(ctx, bad))
	})
}
