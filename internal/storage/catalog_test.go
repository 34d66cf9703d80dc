package storage_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obxstays/obx-backend/internal/model"
	"github.com/obxstays/obx-backend/internal/storage"
)

type mockPropertyRepo struct {
	listFn   func(ctx context.Context) ([]model.Property, error)
	bySlugFn func(ctx context.Context, slug string) (*model.Property, error)
}

func (m *mockPropertyRepo) ListProperties(ctx context.Context) ([]model.Property, error) {
	return m.listFn(ctx)
}
func (m *mockPropertyRepo) GetPropertyBySlug(ctx context.Context, slug string) (*model.Property, error) {
	return m.bySlugFn(ctx, slug)
}

func testLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalogList_NoDatabase_Seed(t *testing.T) {
	c := storage.NewCatalog(nil, testLog())

	got, prov := c.List(context.Background())
	assert.Equal(t, model.SourceFallback, prov)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.NotEmpty(t, p.Slug)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Town)
	}
}

func TestCatalogList_Live(t *testing.T) {
	repo := &mockPropertyRepo{
		listFn: func(_ context.Context) ([]model.Property, error) {
			return []model.Property{{Slug: "db-house", Name: "DB House"}}, nil
		},
	}
	c := storage.NewCatalogWithRepo(repo, testLog())

	got, prov := c.List(context.Background())
	assert.Equal(t, model.SourceLive, prov)
	require.Len(t, got, 1)
	assert.Equal(t, "db-house", got[0].Slug)
}

func TestCatalogList_QueryError_Seed(t *testing.T) {
	repo := &mockPropertyRepo{
		listFn: func(_ context.Context) ([]model.Property, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}
	c := storage.NewCatalogWithRepo(repo, testLog())

	got, prov := c.List(context.Background())
	assert.Equal(t, model.SourceFallback, prov)
	require.NotEmpty(t, got)
}

func TestCatalogList_EmptyTable_Seed(t *testing.T) {
	repo := &mockPropertyRepo{
		listFn: func(_ context.Context) ([]model.Property, error) { return nil, nil },
	}
	c := storage.NewCatalogWithRepo(repo, testLog())

	_, prov := c.List(context.Background())
	assert.Equal(t, model.SourceFallback, prov)
}

func TestCatalogBySlug_Live(t *testing.T) {
	repo := &mockPropertyRepo{
		bySlugFn: func(_ context.Context, slug string) (*model.Property, error) {
			return &model.Property{Slug: slug, Name: "DB House"}, nil
		},
	}
	c := storage.NewCatalogWithRepo(repo, testLog())

	p, prov := c.BySlug(context.Background(), "db-house")
	require.NotNil(t, p)
	assert.Equal(t, model.SourceLive, prov)
}

func TestCatalogBySlug_SeedFallback(t *testing.T) {
	c := storage.NewCatalog(nil, testLog())

	p, prov := c.BySlug(context.Background(), "pelican-watch")
	require.NotNil(t, p)
	assert.Equal(t, model.SourceFallback, prov)
	assert.Equal(t, "Pelican Watch", p.Name)
}

func TestCatalogBySlug_Unknown(t *testing.T) {
	c := storage.NewCatalog(nil, testLog())

	p, _ := c.BySlug(context.Background(), "no-such-listing")
	assert.Nil(t, p)
}
