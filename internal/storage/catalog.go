package storage

import (
	"context"
	"log/slog"

	"github.com/obxstays/obx-backend/internal/model"
)

type propertyRepo interface {
	ListProperties(ctx context.Context) ([]model.Property, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*model.Property, error)
}

// Catalog serves property listings, degrading to the seed catalog when
// no database is configured or a query fails. Lookups never error; a
// nil property means not found.
type Catalog struct {
	repo propertyRepo
	log  *slog.Logger
}

// NewCatalog constructs a Catalog. repo may be nil when no database is
// configured.
func NewCatalog(repo *Repository, log *slog.Logger) *Catalog {
	if repo == nil {
		return &Catalog{log: log}
	}
	return &Catalog{repo: repo, log: log}
}

// NewCatalogWithRepo constructs a Catalog with a custom repo (for tests).
func NewCatalogWithRepo(repo propertyRepo, log *slog.Logger) *Catalog {
	return &Catalog{repo: repo, log: log}
}

// List returns all properties.
func (c *Catalog) List(ctx context.Context) ([]model.Property, model.Provenance) {
	if c.repo == nil {
		return seedProperties(), model.SourceFallback
	}

	props, err := c.repo.ListProperties(ctx)
	if err != nil {
		c.log.Warn("property list query failed, serving seed catalog", "err", err)
		return seedProperties(), model.SourceFallback
	}
	if len(props) == 0 {
		return seedProperties(), model.SourceFallback
	}
	return props, model.SourceLive
}

// BySlug returns the property with the given slug, or nil when it is
// unknown to both the database and the seed catalog.
func (c *Catalog) BySlug(ctx context.Context, slug string) (*model.Property, model.Provenance) {
	if c.repo != nil {
		p, err := c.repo.GetPropertyBySlug(ctx, slug)
		if err != nil {
			c.log.Warn("property lookup failed, consulting seed catalog", "slug", slug, "err", err)
		} else if p != nil {
			return p, model.SourceLive
		}
	}

	for _, p := range seedProperties() {
		if p.Slug == slug {
			return &p, model.SourceFallback
		}
	}
	return nil, model.SourceFallback
}
